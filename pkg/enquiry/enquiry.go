package enquiry

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrMissingFields = errors.New("all fields are required")

type Enquiry struct {
	MongoID primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name    string             `json:"name" bson:"name"`
	Email   string             `json:"email" bson:"email"`
	Message string             `json:"message" bson:"message"`
	Created time.Time          `json:"created" bson:"created"`
}

type Repository interface {
	Create(e *Enquiry) error
}
