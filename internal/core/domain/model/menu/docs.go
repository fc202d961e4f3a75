// Package menu provides the menu item value object, the fixed recommendation
// catalog, and the criteria value objects (Preferences, Filters) used by the
// recommendation service.
package menu
