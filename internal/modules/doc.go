// Package modules contains the application's self-contained features.
//
// Each subdirectory is a module implementing module.Module. Enabled modules
// are listed in app.NewModules and booted by the server at startup.
package modules
