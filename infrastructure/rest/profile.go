package rest

type Mode string

const (
	ModeCORS   Mode = "cors"
	ModeNoCORS Mode = "no-cors"
)

type Credentials string

const (
	CredentialsOmit    Credentials = "omit"
	CredentialsInclude Credentials = "include"
)

// Profile is one way of issuing a request. The transport walks the profiles
// in order and stops at the first one that gets a usable answer.
//
// A no-cors profile sends a "simple" request: no Origin, no credentials and
// only safelisted headers, so it also gets through proxies and gateways that
// reject preflighted traffic.
type Profile struct {
	Name        string
	Mode        Mode
	Credentials Credentials
}

func DefaultProfiles() []Profile {
	return []Profile{
		{Name: "cors-omit", Mode: ModeCORS, Credentials: CredentialsOmit},
		{Name: "cors-include", Mode: ModeCORS, Credentials: CredentialsInclude},
		{Name: "no-cors", Mode: ModeNoCORS, Credentials: CredentialsOmit},
	}
}
