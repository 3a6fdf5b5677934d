// brale is a CLI for the Brale fiat-to-stablecoin payment API.
//
// It authenticates with OAuth2 client credentials and manages accounts,
// blockchain addresses, one-time transfers, and recurring wire-to-stablecoin
// automations.
//
// Usage:
//
//	brale auth login               Authenticate with client credentials
//	brale accounts list            List accessible accounts
//	brale addresses list           List custodial addresses
//	brale transfers create         Create a fiat-to-stablecoin transfer
//	brale automations create       Create a standing wire automation
//	brale version                  Show version info
package main

import "github.com/brale-xyz/brale-cli/internal/commands"

func main() {
	commands.Execute()
}
