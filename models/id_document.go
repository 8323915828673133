package models

// IDDocument is the audit trail of an uploaded identity document.
type IDDocument struct {
	GuestID     *string    `json:"guest_id"`
	DocType     *string    `json:"doc_type" validate:"omitempty,oneof=aadhaar pan passport other"`
	IDNumber    *string    `json:"id_number"`
	RawText     *string    `json:"raw_text"`
	Extracted   Attributes `json:"extracted"`
	FileName    *string    `json:"file_name"`
	ContentType *string    `json:"content_type"`
	ReceivedAt  *Timestamp `json:"received_at"`
}

func ValidateIDDocument(raw map[string]any) (*IDDocument, error) {
	r := newFieldReader(raw)
	d := &IDDocument{
		GuestID:     r.str("guest_id"),
		DocType:     r.str("doc_type"),
		IDNumber:    r.str("id_number"),
		RawText:     r.str("raw_text"),
		Extracted:   r.attributes("extracted"),
		FileName:    r.str("file_name"),
		ContentType: r.str("content_type"),
		ReceivedAt:  r.timestamp("received_at"),
	}
	if err := r.check(KindIDDocument, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *IDDocument) Kind() Kind { return KindIDDocument }

func (d *IDDocument) StorageRecord() map[string]any {
	extracted := d.Extracted
	if extracted == nil {
		extracted = Attributes{}
	}
	rec := map[string]any{
		"guest_id":     strOrNil(d.GuestID),
		"doc_type":     strOrNil(d.DocType),
		"id_number":    strOrNil(d.IDNumber),
		"raw_text":     strOrNil(d.RawText),
		"extracted":    map[string]any(extracted),
		"file_name":    strOrNil(d.FileName),
		"content_type": strOrNil(d.ContentType),
		"received_at":  nil,
	}
	if d.ReceivedAt != nil {
		rec["received_at"] = d.ReceivedAt.String()
	}
	return rec
}
