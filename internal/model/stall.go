package model

// Domain records returned by the remote data API.  These mirror the API's
// JSON contract; this service never stores them, it only passes them through
// to page payloads.

// Stall is a single food stall inside a hawker center.
type Stall struct {
	StallID           int64        `json:"stallID"`
	HawkerID          int64        `json:"hawkerID"`
	HawkerCenterID    int64        `json:"hawkerCenterID"`
	StallName         string       `json:"stallName"`
	HawkerCenter      HawkerCenter `json:"hawkerCenter"`
	Images            []string     `json:"images"`
	StartTime         string       `json:"startTime"`
	EndTime           string       `json:"endTime"`
	UnitNumber        string       `json:"unitNumber"`
	HygieneRating     string       `json:"hygieneRating"`
	CuisineType       []string     `json:"cuisineType"`
	EstimatedWaitTime int          `json:"estimatedWaitTime"`
	PriceRange        string       `json:"priceRange"`
}

// HawkerCenter is a physical center housing stalls; latitude/longitude feed
// the map view.
type HawkerCenter struct {
	HawkerCenterID int64   `json:"hawkerCenterID"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
}

// Hawker is a stall operator account, including the verification flag the
// admin approval flow flips.
type Hawker struct {
	HawkerID     int64  `json:"hawkerID"`
	Address      string `json:"address"`
	License      string `json:"license"`
	VerifyStatus bool   `json:"verifyStatus"`
	UserID       int64  `json:"userID"`
	User         User   `json:"user"`
}

// Dish is a menu item belonging to a stall.
type Dish struct {
	DishID          int64   `json:"dishID"`
	StallID         int64   `json:"stallID"`
	DishName        string  `json:"dishName"`
	Price           float64 `json:"price"`
	Photo           string  `json:"photo,omitempty"`
	OnPromotion     bool    `json:"onPromotion"`
	StartDate       string  `json:"startDate,omitempty"`
	EndDate         string  `json:"endDate,omitempty"`
	DiscountedPrice float64 `json:"discountedPrice,omitempty"`
}

// Review is a consumer review of a stall; reported reviews surface on the
// admin dashboard.
type Review struct {
	ReviewID   int64  `json:"reviewID"`
	ReviewText string `json:"reviewText"`
	Rating     int    `json:"rating"`
	IsReported bool   `json:"isReported"`
	ReportText string `json:"reportText,omitempty"`
	ReportType string `json:"reportType,omitempty"`
	ConsumerID int64  `json:"consumerID"`
}
