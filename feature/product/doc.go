// Package product reconciles a supplier product feed with the products table.
//
// The feed is a JSON array of products stored in the object storage bucket. It is
// the source side of every run; the database rows are the destination side.
//
// # Matching
//
// Products match on ID (1000), SKU (100, case-insensitive and trimmed) and Name
// (10, case-insensitive). A feed product without an ID can still match on SKU.
// Fields are compared through an explicit descriptor table; ID and UpdatedAt
// belong to the database and are never compared or merged.
//
// # Plans
//
// A run yields a Report: one Entry per result, and a Plan of actions:
//   - update_db: a stored product changed by merge-missing or merge
//   - insert_db: a feed-only product, when inserts are requested
//   - delete_db: a stored-only product, when purge is requested
//
// ApplyPlan executes nothing unless the options are confirmed and not a dry run.
//
// # HTTP
//
//	GET  /products/reconcile?mode=merge-missing
//	POST /products/reconcile?mode=merge&insert=true&purge=true&save=true
//	GET  /products/reports
//	GET  /products/check
package product
