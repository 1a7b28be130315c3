// Package loader registers features on the fiber app.
//
// A feature owns its routes and decides through IsEnabled whether it can run
// with the resources available at startup; the products feature, for example,
// stays off without a database. Manager.LoadAll loads features in registration
// order and returns the names it loaded so start can log them.
package loader
