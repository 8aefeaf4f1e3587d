package domain

// ListingSeller is the seller summary embedded in a search result.
type ListingSeller struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	IsVerified bool   `json:"is_verified"`
}

// Seller is the extended seller record from the seller-profile endpoint.
type Seller struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	IsVerified      bool    `json:"is_verified"`
	AverageScore    float64 `json:"average_score"`
	NumberOfReviews int     `json:"number_of_reviews"`
	BankAccount     bool    `json:"bank_account"`
	Identification  bool    `json:"identification"`
	PhoneNumber     bool    `json:"phone_number"`
}
