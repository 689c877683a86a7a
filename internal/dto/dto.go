package dto

// SoldMessage is returned once every fossil of a sale is marked sold.
// The spelling is part of the contract the storefront checks against.
const SoldMessage = "Fossil(s) succcessfully marked as sold"

type MessageResponse struct {
	Message string `json:"message"`
}

type SellFailedResponse struct {
	Message string   `json:"message"`
	OrderID string   `json:"order_id"`
	Sold    []string `json:"sold"`
	Failed  []string `json:"failed"`
}
