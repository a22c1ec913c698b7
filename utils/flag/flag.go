/*
flag Package set up cli flags shared across services

Usage:

	Flags listed in this package are shared across boundaries and service-agnostic
	For service dependent flags please define in their respective package
*/

package flag

import (
	"flag"
)

const (
	APIServer = "api_server"
)

var (
	IsDevelopment bool
	ServiceName   string
	ByPassAuth    bool
)

func init() {
	flag.BoolVar(&IsDevelopment, "dev", true, "set to true if the current run is for development. default value is true")
	flag.StringVar(&ServiceName, "service", APIServer, "name of the service under which logs are emitted")
	flag.BoolVar(&ByPassAuth, "no_auth", false, "set to true to skip the auth middleware, for local development only")
}

// Parse must be called once from main before any flag value is read. Parsing
// cannot happen during init, otherwise the test binary's own flags would not
// be registered yet.
func Parse() {
	flag.Parse()
}
