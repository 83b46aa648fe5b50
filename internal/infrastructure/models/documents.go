package models

// Document shapes stored in Mongo. Field names mirror the collection
// schema, not the Go entities.

type ProfileDocument struct {
	UUID     string `bson:"uuid"`
	FullName string `bson:"fullName"`
	Email    string `bson:"email"`
	Address  string `bson:"address"`
	CP       int    `bson:"cp"`
}

type ProductDocument struct {
	ID    int    `bson:"id"`
	Name  string `bson:"name"`
	Price string `bson:"price"`
	CP    string `bson:"cp"`
}

// ScoredProductDocument carries the text-search relevance score
// projected by the store alongside the product fields.
type ScoredProductDocument struct {
	ProductDocument `bson:",inline"`
	Score           float64 `bson:"score"`
}
