package hostnamex

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"
	"github.com/pkg/errors"
)

// resolvConf is the file we read the system resolver config from.
var resolvConf = "/etc/resolv.conf"

// ErrNoAnswer indicates that no resolver gave us a usable answer.
var ErrNoAnswer = errors.New("hostnamex: no usable DNS answer")

// queryTimeout bounds each individual DNS round trip.
const queryTimeout = 5 * time.Second

// queryFQDN expands hostname into a fully qualified domain name by
// asking the system's resolvers for its address records and reading
// the owner name of the answer.
func queryFQDN(ctx context.Context, hostname string) (string, error) {
	config, err := dns.ClientConfigFromFile(resolvConf)
	if err != nil {
		return "", errors.Wrap(err, "cannot read resolver configuration")
	}
	client := &dns.Client{Timeout: queryTimeout}
	for _, candidate := range searchList(hostname, config.Search, config.Ndots) {
		query := new(dns.Msg)
		query.SetQuestion(dns.Fqdn(candidate), dns.TypeA)
		for _, server := range config.Servers {
			addr := net.JoinHostPort(server, config.Port)
			resp, _, err := client.ExchangeContext(ctx, query, addr)
			if err != nil || resp.Rcode != dns.RcodeSuccess {
				continue
			}
			if name := answerName(resp); name != "" {
				return name, nil
			}
		}
	}
	return "", ErrNoAnswer
}

// searchList returns the names to try, in order: the name itself when
// it already contains at least ndots dots, then the name joined with
// each configured search domain, then the bare name as a last resort.
func searchList(hostname string, search []string, ndots int) []string {
	var candidates []string
	if strings.Count(hostname, ".") >= ndots {
		candidates = append(candidates, hostname)
	}
	for _, domain := range search {
		candidates = append(candidates, hostname+"."+domain)
	}
	if len(candidates) < 1 {
		candidates = append(candidates, hostname)
	}
	return candidates
}

// answerName extracts the canonical owner name from the answer
// section. The owner of an address record wins; failing that we
// follow a CNAME to its target.
func answerName(resp *dns.Msg) string {
	var cnameTarget string
	for _, rr := range resp.Answer {
		switch record := rr.(type) {
		case *dns.A:
			return strings.TrimSuffix(record.Hdr.Name, ".")
		case *dns.AAAA:
			return strings.TrimSuffix(record.Hdr.Name, ".")
		case *dns.CNAME:
			cnameTarget = strings.TrimSuffix(record.Target, ".")
		}
	}
	return cnameTarget
}
