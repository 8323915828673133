package models

// ID document types shared by Guest.IDType and IDDocument.DocType.
const (
	IDTypeAadhaar  = "aadhaar"
	IDTypePAN      = "pan"
	IDTypePassport = "passport"
	IDTypeOther    = "other"
)

type Guest struct {
	FullName *string    `json:"full_name" validate:"required"`
	Phone    *string    `json:"phone"`
	Email    *string    `json:"email" validate:"omitempty,email"`
	Address  *string    `json:"address"`
	IDType   *string    `json:"id_type" validate:"omitempty,oneof=aadhaar pan passport other"`
	IDNumber *string    `json:"id_number"`
	DOB      *string    `json:"dob"` // YYYY-MM-DD when known, not checked as a date
	Meta     Attributes `json:"meta"`
}

func ValidateGuest(raw map[string]any) (*Guest, error) {
	r := newFieldReader(raw)
	g := &Guest{
		FullName: r.str("full_name"),
		Phone:    r.str("phone"),
		Email:    r.str("email"),
		Address:  r.str("address"),
		IDType:   r.str("id_type"),
		IDNumber: r.str("id_number"),
		DOB:      r.str("dob"),
		Meta:     r.attributes("meta"),
	}
	if err := r.check(KindGuest, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Guest) Kind() Kind { return KindGuest }

func (g *Guest) StorageRecord() map[string]any {
	meta := g.Meta
	if meta == nil {
		meta = Attributes{}
	}
	return map[string]any{
		"full_name": strOrNil(g.FullName),
		"phone":     strOrNil(g.Phone),
		"email":     strOrNil(g.Email),
		"address":   strOrNil(g.Address),
		"id_type":   strOrNil(g.IDType),
		"id_number": strOrNil(g.IDNumber),
		"dob":       strOrNil(g.DOB),
		"meta":      map[string]any(meta),
	}
}
