package methods

import "time"

// Item 40: design method signatures carefully.
//
// Long positional parameter lists of the same type are transposition bugs
// waiting to happen. Past three or four parameters, take an options struct:
// call sites become self-describing and new optional fields don't break
// callers.

// connectPositional is the hard-to-call shape - avoid past a few
// parameters. Swapping host and user compiles fine.
func connectPositional(host, user, password string, port int, timeout time.Duration, insecure bool) string {
	_ = password
	_ = timeout
	_ = insecure
	if port == 0 {
		port = 5432
	}
	return user + "@" + host
}

// ConnectOptions names every knob; zero values are usable defaults.
type ConnectOptions struct {
	Host     string
	Port     int
	User     string
	Password string
	Timeout  time.Duration
	Insecure bool
}

// Connect builds a connection description from named options.
func Connect(opts ConnectOptions) string {
	if opts.Port == 0 {
		opts.Port = 5432
	}
	if opts.Timeout == 0 {
		opts.Timeout = 5 * time.Second
	}
	return opts.User + "@" + opts.Host
}
