// This package contains the core of diggeo: a dispatcher which takes a
// list of targets, resolves domain names if asked to, and queries a
// geolocation provider for each IP address.
//
// The rest of the application is wiring: a CLI which reads config and
// flags, concrete providers and resolvers. diglib itself knows nothing
// about ipgeolocation.io or system DNS, it works with interfaces.
//
// Dispatcher runs lookups on a bounded worker pool but emits results in
// the same order as targets were given. Each target is independent: a
// failure of one lookup never cancels the others, it is only reported
// and accounted in the final Report.
package diglib
