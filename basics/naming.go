package basics

import (
	"reflect"
	"strings"
)

// Item 56: follow the naming conventions.
//
// Go's conventions are shorter than Java's: MixedCaps, no underscores;
// initialisms stay uppercase (HTTPServer, UserID); getters drop the Get
// prefix; one-method interfaces end in -er; package names are short,
// lower-case, singular. The checker below enforces the two mechanical
// rules on exported identifiers and is applied to this package's own
// exemplar type in the tests.

// NamingIssue reports one violation.
type NamingIssue struct {
	Ident  string
	Reason string
}

// commonInitialisms is the subset the checker knows about.
var commonInitialisms = []string{"Id", "Url", "Http", "Api", "Json"}

// CheckExportedNames inspects v's exported method names for underscores and
// half-cased initialisms.
func CheckExportedNames(v any) []NamingIssue {
	var issues []NamingIssue
	rt := reflect.TypeOf(v)
	for i := range rt.NumMethod() {
		name := rt.Method(i).Name
		if strings.Contains(name, "_") {
			issues = append(issues, NamingIssue{Ident: name, Reason: "underscore in identifier"})
		}
		for _, bad := range commonInitialisms {
			if strings.Contains(name, bad) {
				issues = append(issues, NamingIssue{Ident: name, Reason: "initialism not uppercase: " + bad})
			}
		}
	}
	return issues
}

// WellNamedClient is the exemplar: initialisms uppercase, getter without
// Get, no underscores.
type WellNamedClient struct {
	baseURL string
	userID  string
}

// NewWellNamedClient constructs a client.
func NewWellNamedClient(baseURL, userID string) *WellNamedClient {
	return &WellNamedClient{baseURL: baseURL, userID: userID}
}

// BaseURL returns the base URL (no Get prefix).
func (c *WellNamedClient) BaseURL() string { return c.baseURL }

// UserID returns the user ID.
func (c *WellNamedClient) UserID() string { return c.userID }

// poorlyNamedClient collects the violations for the checker to find.
type poorlyNamedClient struct{}

// GetBase_Url has an underscore, a half-cased initialism and a Get prefix.
func (poorlyNamedClient) GetBase_Url() string { return "" }
