package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checks that the domain part of an address can
// receive mail: an MX record, or failing that any A/AAAA record.
// Format validation is the binding's job; this only answers whether
// the host behind the @ exists.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	host := email[at+1:]

	if mx, err := net.LookupMX(host); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(host)
	return err == nil && len(ips) > 0
}
