package model

import "time"

// PropertyType is a reference document resolved into properties on read.
type PropertyType struct {
	ID       string `json:"id,omitempty" firestore:"id,omitempty"`
	TypeName string `json:"typeName,omitempty" firestore:"typeName,omitempty"`
}

// Property is the core document stored in the `properties` collection.
// Price is polymorphic: new documents store a number, legacy imports store a
// string. PropertyStatus is free text and inconsistently cased.
type Property struct {
	ID              string        `json:"id,omitempty" firestore:"id,omitempty"`
	Name            string        `json:"name,omitempty" firestore:"name,omitempty"`
	Price           any           `json:"price,omitempty" firestore:"price,omitempty"`
	PropertyStatus  string        `json:"propertyStatus,omitempty" firestore:"propertyStatus,omitempty"`
	PropertyTypeID  string        `json:"propertyTypeId,omitempty" firestore:"propertyTypeId,omitempty"`
	PropertyType    *PropertyType `json:"propertyType,omitempty" firestore:"-"` // populated from property_types
	CreatedByUserID string        `json:"createdByUserId,omitempty" firestore:"createdByUserId,omitempty"`
	Views           int64         `json:"views,omitempty" firestore:"views,omitempty"`
	Published       bool          `json:"published,omitempty" firestore:"published,omitempty"`
	CreatedAt       time.Time     `json:"createdAt,omitempty" firestore:"createdAt,omitempty"`
	UpdatedAt       time.Time     `json:"updatedAt,omitempty" firestore:"updatedAt,omitempty"`
}

// Lead is the core document stored in the `leads` collection. LeadStatus and
// FollowUpStatus are either a plain string or a `{name: ...}` reference map.
type Lead struct {
	ID              string    `json:"id,omitempty" firestore:"id,omitempty"`
	FirstName       string    `json:"firstName,omitempty" firestore:"firstName,omitempty"`
	LastName        string    `json:"lastName,omitempty" firestore:"lastName,omitempty"`
	FullName        string    `json:"fullName,omitempty" firestore:"fullName,omitempty"`
	Email           string    `json:"email,omitempty" firestore:"email,omitempty"`
	Phone           string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	LeadStatus      any       `json:"leadStatus,omitempty" firestore:"leadStatus,omitempty"`
	LeadDesignation string    `json:"leadDesignation,omitempty" firestore:"leadDesignation,omitempty"`
	FollowUpStatus  any       `json:"followUpStatus,omitempty" firestore:"followUpStatus,omitempty"`
	AssignedTo      string    `json:"assignedTo,omitempty" firestore:"assignedTo,omitempty"`
	Published       bool      `json:"published,omitempty" firestore:"published,omitempty"`
	CreatedAt       time.Time `json:"createdAt,omitempty" firestore:"createdAt,omitempty"`
}

// RoleRef is the role reference embedded in user documents.
type RoleRef struct {
	ID   string `json:"id,omitempty" firestore:"id,omitempty"`
	Name string `json:"name,omitempty" firestore:"name,omitempty"`
}

// User is the core document stored in the `users` collection.
type User struct {
	ID        string  `json:"id,omitempty" firestore:"id,omitempty"`
	FirstName string  `json:"firstName,omitempty" firestore:"firstName,omitempty"`
	LastName  string  `json:"lastName,omitempty" firestore:"lastName,omitempty"`
	Role      RoleRef `json:"role,omitempty" firestore:"role,omitempty"`
	Published bool    `json:"published,omitempty" firestore:"published,omitempty"`
}
