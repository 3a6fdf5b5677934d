package api

// Amount is a fiat amount with its currency.
type Amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// Endpoint describes one side of a transfer: the value type (USD, USDC,
// SBC, ...) and how it moves (wire, ach, or a blockchain network).
type Endpoint struct {
	AddressID    string `json:"address_id,omitempty"`
	ValueType    string `json:"value_type"`
	TransferType string `json:"transfer_type"`
}

// Address is a custodial blockchain address, read-only to this client.
// The API reports the networks it can receive on as transfer_types.
type Address struct {
	ID                string   `json:"id"`
	Status            string   `json:"status"`
	Type              string   `json:"type,omitempty"`
	Name              string   `json:"name,omitempty"`
	Address           string   `json:"address,omitempty"`
	Created           string   `json:"created,omitempty"`
	SupportedNetworks []string `json:"transfer_types"`
}

// WireInstructions are the bank details a payer wires funds to.
type WireInstructions struct {
	BankName           string `json:"bank_name,omitempty"`
	BankAddress        string `json:"bank_address,omitempty"`
	AccountNumber      string `json:"account_number,omitempty"`
	RoutingNumber      string `json:"routing_number,omitempty"`
	BeneficiaryName    string `json:"beneficiary_name,omitempty"`
	BeneficiaryAddress string `json:"beneficiary_address,omitempty"`
	Memo               string `json:"memo,omitempty"`
}

// ACHInstructions are the bank details for ACH funding.
type ACHInstructions struct {
	AccountNumber string `json:"account_number,omitempty"`
	RoutingNumber string `json:"routing_number,omitempty"`
	AccountName   string `json:"account_name,omitempty"`
}

// TransferRequest is the POST body for creating a transfer.
type TransferRequest struct {
	Amount      Amount   `json:"amount"`
	Source      Endpoint `json:"source"`
	Destination Endpoint `json:"destination"`
	Note        string   `json:"note,omitempty"`
}

// Transfer is a one-time fiat-to-stablecoin conversion.
type Transfer struct {
	ID               string            `json:"id"`
	Status           string            `json:"status"`
	Amount           Amount            `json:"amount"`
	Source           Endpoint          `json:"source"`
	Destination      Endpoint          `json:"destination"`
	Note             string            `json:"note,omitempty"`
	CreatedAt        string            `json:"created_at,omitempty"`
	UpdatedAt        string            `json:"updated_at,omitempty"`
	WireInstructions *WireInstructions `json:"wire_instructions,omitempty"`
	ACHInstructions  *ACHInstructions  `json:"ach_instructions,omitempty"`
}

// AutomationRequest is the POST body for creating an automation.
type AutomationRequest struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Destination Endpoint `json:"destination"`
}

// Automation is a standing instruction converting incoming fiat wires
// into a stablecoin on a fixed network.
type Automation struct {
	ID               string            `json:"id"`
	Name             string            `json:"name,omitempty"`
	Status           string            `json:"status"`
	Destination      Endpoint          `json:"destination"`
	CreatedAt        string            `json:"created_at,omitempty"`
	UpdatedAt        string            `json:"updated_at,omitempty"`
	WireInstructions *WireInstructions `json:"wire_instructions,omitempty"`
}

// List envelopes as the API returns them.

type accountList struct {
	Accounts []string `json:"accounts"`
}

type addressList struct {
	Addresses []Address `json:"addresses"`
}

type transferList struct {
	Transfers []Transfer `json:"transfers"`
}

type automationList struct {
	Automations []Automation `json:"automations"`
}
