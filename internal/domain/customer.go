package domain

// Customer is an account holder, identified by a generated 9-digit
// decimal ID.
type Customer struct {
	ID             string   `json:"customer_id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	AccountNumbers []string `json:"account_numbers"`
}
