package checker

import (
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"
)

const srvService = "_minecraft._tcp."

// lookupSRV queries the system resolvers for a _minecraft._tcp SRV record.
// Best effort: any failure means "no record" and the caller connects to
// the host directly.
func lookupSRV(host string, timeout time.Duration) (string, uint16, bool) {
	conf, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil || len(conf.Servers) == 0 {
		return "", 0, false
	}

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(srvService+host), dns.TypeSRV)
	msg.RecursionDesired = true

	client := &dns.Client{Timeout: timeout}

	for _, server := range conf.Servers {
		resp, _, err := client.Exchange(msg, net.JoinHostPort(server, conf.Port))
		if err != nil || resp == nil || resp.Rcode != dns.RcodeSuccess {
			continue
		}
		for _, rr := range resp.Answer {
			if srv, ok := rr.(*dns.SRV); ok && srv.Target != "." {
				return strings.TrimSuffix(srv.Target, "."), srv.Port, true
			}
		}
		// Resolver answered with no SRV record - no point asking the rest.
		return "", 0, false
	}

	return "", 0, false
}
