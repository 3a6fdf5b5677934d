package api

import "sort"

// StatusActive is the address status eligible for selection.
const StatusActive = "active"

// Selection is the outcome of compatible-address selection: the chosen
// address and the effective network.
type Selection struct {
	Address Address
	Network string
}

// SelectCompatibleAddress picks the destination address for a transfer or
// automation. With a requested network, the first active address
// supporting it wins. With no network, the first active address that
// supports anything wins and its first listed network becomes the
// effective network. Selection is order-dependent: no ranking beyond
// first eligible match.
func SelectCompatibleAddress(addresses []Address, network string) (*Selection, error) {
	for _, addr := range addresses {
		if addr.Status != StatusActive {
			continue
		}
		if network != "" {
			if contains(addr.SupportedNetworks, network) {
				return &Selection{Address: addr, Network: network}, nil
			}
			continue
		}
		if len(addr.SupportedNetworks) > 0 {
			return &Selection{Address: addr, Network: addr.SupportedNetworks[0]}, nil
		}
	}

	return nil, &NoCompatibleAddressError{
		Requested: network,
		Available: activeNetworks(addresses),
	}
}

// activeNetworks returns the sorted union of networks supported by
// active addresses, for diagnostic display.
func activeNetworks(addresses []Address) []string {
	seen := make(map[string]struct{})
	var networks []string
	for _, addr := range addresses {
		if addr.Status != StatusActive {
			continue
		}
		for _, n := range addr.SupportedNetworks {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			networks = append(networks, n)
		}
	}
	sort.Strings(networks)
	return networks
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
