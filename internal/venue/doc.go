// Package venue loads the list of venues whose event pages are checked.
//
// The list lives in config/venues.json and is decoded as strict JSON. A path
// ending in .yaml or .yml is decoded as YAML instead. Order is significant:
// matched venues are reported in the order they appear here.
package venue
