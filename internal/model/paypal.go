package model

const (
	OrderStatusCompleted = "COMPLETED"

	LinkRelSelf = "self"
)

type PaypalLink struct {
	Rel    string `json:"rel"`
	Href   string `json:"href"`
	Method string `json:"method,omitempty"`
}

type Amount struct {
	Currency string `json:"currency_code"`
	Value    string `json:"value"`
}

type PurchaseUnit struct {
	ReferenceID string `json:"reference_id"`
	Amount      Amount `json:"amount"`
}

type Payer struct {
	PayerID string `json:"payer_id"`
	Email   string `json:"email_address"`
}

// PaypalOrder is both the stub posted by the storefront after checkout and
// the full order returned by the Orders v2 API.
type PaypalOrder struct {
	ID            string         `json:"id"`
	Intent        string         `json:"intent"`
	Status        string         `json:"status"`
	Payer         Payer          `json:"payer"`
	PurchaseUnits []PurchaseUnit `json:"purchase_units"`
	Links         []PaypalLink   `json:"links"`
}

// Link returns the first link with the given relation.
func (o *PaypalOrder) Link(rel string) (PaypalLink, bool) {
	for _, link := range o.Links {
		if link.Rel == rel {
			return link, true
		}
	}
	return PaypalLink{}, false
}
