// Package instrument registers compiled entities with a management
// registrator when a floor is opened and unregisters them when it closes.
//
// A registrator failing for one entity never stops the others: failures are
// logged at debug level and swallowed.
package instrument
