package model

// Contact is a shopper reachable over WhatsApp. The phone number — not the
// store-assigned id — is the natural key used by reconciliation, so within a
// tenant there should be exactly one contact per phone.
type Contact struct {
	ID            string `json:"id" bson:"-"`
	Name          string `json:"name" bson:"name"`
	Phone         string `json:"phone" bson:"phone"`
	Description   string `json:"description" bson:"description"`
	Location      string `json:"location" bson:"location"`
	Sales         string `json:"sales" bson:"sales"` // assigned sales-contact key, "phone" = store line
	PastInfo      string `json:"pastInfo" bson:"pastInfo"`
	Visits        int64  `json:"visits" bson:"visits"`
	VisitsPast    int64  `json:"visitsPast" bson:"visitsPast"`
	CreatedAt     int64  `json:"createdAt" bson:"createdAt"`
	CreatedAtPast int64  `json:"createdAtPast" bson:"createdAtPast"`
	UpdatedAt     int64  `json:"updatedAt" bson:"updatedAt"`
}
