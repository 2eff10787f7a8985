package models

import (
	"cmp"
	"fmt"
	"time"
)

// Favourite records that a user liked a product at a given moment.
// All three fields form the primary key; there are no other attributes.
type Favourite struct {
	UserID    int       `gorm:"primaryKey;autoIncrement:false;column:user_id"`
	ProductID int       `gorm:"primaryKey;autoIncrement:false;column:product_id"`
	LikeDate  time.Time `gorm:"primaryKey;column:like_date"`
}

// TableName pins the table name shared with the other services.
func (Favourite) TableName() string { return "favourites" }

// ID returns the composite identity of the favourite.
func (f Favourite) ID() FavouriteID {
	return NewFavouriteID(f.UserID, f.ProductID, f.LikeDate)
}

// FavouriteID is the composite identity of a Favourite. It is a value type:
// compare with Equal, never with ==, since time.Time carries a location.
type FavouriteID struct {
	userID    int
	productID int
	likeDate  time.Time
}

// NewFavouriteID builds a composite key.
func NewFavouriteID(userID, productID int, likeDate time.Time) FavouriteID {
	return FavouriteID{userID: userID, productID: productID, likeDate: likeDate}
}

func (id FavouriteID) UserID() int         { return id.userID }
func (id FavouriteID) ProductID() int      { return id.productID }
func (id FavouriteID) LikeDate() time.Time { return id.likeDate }

// Equal reports whether both keys name the same favourite.
func (id FavouriteID) Equal(other FavouriteID) bool {
	return id.userID == other.userID &&
		id.productID == other.productID &&
		id.likeDate.Equal(other.likeDate)
}

// Compare orders keys by user, then product, then like date.
func (id FavouriteID) Compare(other FavouriteID) int {
	switch {
	case id.userID != other.userID:
		return cmp.Compare(id.userID, other.userID)
	case id.productID != other.productID:
		return cmp.Compare(id.productID, other.productID)
	default:
		return id.likeDate.Compare(other.likeDate)
	}
}

// Key is a deterministic string form usable as a map key. Two keys that are
// Equal always produce the same Key.
func (id FavouriteID) Key() string {
	return fmt.Sprintf("%d/%d/%s", id.userID, id.productID, id.likeDate.UTC().Format(time.RFC3339Nano))
}

func (id FavouriteID) String() string {
	return fmt.Sprintf("FavouriteId(userId=%d, productId=%d, likeDate=%s)",
		id.userID, id.productID, id.likeDate.Format(time.RFC3339Nano))
}
