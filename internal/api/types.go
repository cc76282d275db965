package api

type CommandRequest struct {
	Command string `json:"command"`
}

type CommandResponse struct {
	Lines []string `json:"lines"`
}

type ItemResponse struct {
	Selector    string `json:"selector"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Quantity    int    `json:"quantity"`
}

type HoldingResponse struct {
	Denomination int `json:"denomination"`
	Count        int `json:"count"`
}

type BankResponse struct {
	Holdings   []HoldingResponse `json:"holdings"`
	TotalValue int               `json:"totalValue"`
}

type InsertedResponse struct {
	Inserted int `json:"inserted"`
}

type RestockRequest struct {
	Selector    string `json:"selector"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Quantity    int    `json:"quantity"`
}

type BankStockRequest struct {
	Denomination int `json:"denomination"`
	Quantity     int `json:"quantity"`
}

type ErrorResponse struct {
	Errors *string `json:"errors,omitempty"`
}
