package entity

import "time"

const (
	ProduceStatusActive  = "active"
	ProduceStatusSold    = "sold"
	ProduceStatusExpired = "expired"
	ProduceStatusDeleted = "deleted"
)

type Price struct {
	Value float64 `json:"value" firestore:"value"`
	Unit  string  `json:"unit" firestore:"unit"`
}

type Quantity struct {
	Value float64 `json:"value" firestore:"value"`
	Unit  string  `json:"unit" firestore:"unit"`
}

type ProduceLocation struct {
	Village   string  `json:"village,omitempty" firestore:"village,omitempty"`
	District  string  `json:"district,omitempty" firestore:"district,omitempty"`
	State     string  `json:"state,omitempty" firestore:"state,omitempty"`
	Latitude  float64 `json:"latitude,omitempty" firestore:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty" firestore:"longitude,omitempty"`
}

// Interest records a buyer who expressed interest in a listing.
type Interest struct {
	BuyerID   string    `json:"buyer_id" firestore:"buyerId"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// ProducePost is a farmer's produce listing. Chats may reference one as their
// related listing.
type ProducePost struct {
	ID             string          `json:"id" firestore:"id"`
	FarmerID       string          `json:"farmer_id" firestore:"farmerId"`
	ProductName    string          `json:"product_name" firestore:"productName"`
	Category       string          `json:"category" firestore:"category"`
	Description    string          `json:"description,omitempty" firestore:"description"`
	Images         []string        `json:"images" firestore:"images"`
	Price          Price           `json:"price" firestore:"price"`
	Quantity       Quantity        `json:"quantity" firestore:"quantity"`
	Quality        string          `json:"quality,omitempty" firestore:"quality"`
	IsOrganic      bool            `json:"is_organic" firestore:"isOrganic"`
	IsAvailable    bool            `json:"is_available" firestore:"isAvailable"`
	Location       ProduceLocation `json:"location,omitempty" firestore:"location"`
	Views          int64           `json:"views" firestore:"views"`
	Interests      []Interest      `json:"interests" firestore:"interests"`
	AvailableFrom  time.Time       `json:"available_from" firestore:"availableFrom"`
	AvailableUntil time.Time       `json:"available_until,omitempty" firestore:"availableUntil"`
	Status         string          `json:"status" firestore:"status"`
	CreatedAt      time.Time       `json:"created_at" firestore:"createdAt"`
	UpdatedAt      time.Time       `json:"updated_at" firestore:"updatedAt"`
}

// HasInterest reports whether buyerID already expressed interest.
func (p *ProducePost) HasInterest(buyerID string) bool {
	for _, i := range p.Interests {
		if i.BuyerID == buyerID {
			return true
		}
	}
	return false
}
