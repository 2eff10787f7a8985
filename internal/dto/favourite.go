package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// likeDateLayout covers dd-MM-yyyy__HH:mm:ss; the microseconds follow after a
// colon, which time.Format cannot express as a fractional second.
const likeDateLayout = "02-01-2006__15:04:05"

// FavouriteDto is the transfer form of a favourite. User and Product are
// display detail filled in on reads when the remote services answer.
type FavouriteDto struct {
	UserID    int         `json:"userId" validate:"required"`
	ProductID int         `json:"productId" validate:"required"`
	LikeDate  time.Time   `json:"likeDate"`
	User      *UserDto    `json:"user,omitempty"`
	Product   *ProductDto `json:"product,omitempty"`
}

type favouriteWire struct {
	UserID    int         `json:"userId"`
	ProductID int         `json:"productId"`
	LikeDate  *string     `json:"likeDate"`
	User      *UserDto    `json:"user,omitempty"`
	Product   *ProductDto `json:"product,omitempty"`
}

func (f FavouriteDto) MarshalJSON() ([]byte, error) {
	w := favouriteWire{UserID: f.UserID, ProductID: f.ProductID, User: f.User, Product: f.Product}
	if !f.LikeDate.IsZero() {
		s := FormatLikeDate(f.LikeDate)
		w.LikeDate = &s
	}
	return json.Marshal(w)
}

func (f *FavouriteDto) UnmarshalJSON(data []byte) error {
	var w favouriteWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*f = FavouriteDto{UserID: w.UserID, ProductID: w.ProductID, User: w.User, Product: w.Product}
	if w.LikeDate != nil && *w.LikeDate != "" {
		t, err := ParseLikeDate(*w.LikeDate)
		if err != nil {
			return err
		}
		f.LikeDate = t
	}
	return nil
}

// FormatLikeDate renders t in UTC as dd-MM-yyyy__HH:mm:ss:SSSSSS.
func FormatLikeDate(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%s:%06d", t.Format(likeDateLayout), t.Nanosecond()/int(time.Microsecond))
}

// ParseLikeDate parses a dd-MM-yyyy__HH:mm:ss:SSSSSS timestamp as UTC.
func ParseLikeDate(s string) (time.Time, error) {
	i := strings.LastIndexByte(s, ':')
	if i < 0 || len(s)-i-1 != 6 {
		return time.Time{}, fmt.Errorf("invalid likeDate %q: expected dd-MM-yyyy__HH:mm:ss:SSSSSS", s)
	}
	t, err := time.ParseInLocation(likeDateLayout, s[:i], time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid likeDate %q: %w", s, err)
	}
	frac := s[i+1:]
	for j := 0; j < len(frac); j++ {
		if frac[j] < '0' || frac[j] > '9' {
			return time.Time{}, fmt.Errorf("invalid likeDate %q: bad microseconds", s)
		}
	}
	micros, err := strconv.Atoi(frac)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid likeDate %q: bad microseconds", s)
	}
	return t.Add(time.Duration(micros) * time.Microsecond), nil
}
