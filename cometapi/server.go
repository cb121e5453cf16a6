// Copyright 2021-2022 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cometapi

import (
	"github.com/cometmodel/cometmodel-go"
)

// LicenseUsageInfo reports how much of the server's license is in use.
// The two counters use lower camel case keys, and only deviceCount is always
// present.
type LicenseUsageInfo struct {
	DeviceCount  int64
	BoosterCount *int64
	ValidUntil   int64
	Features     map[string]bool

	// UnknownFields holds members the server sent that aren't declared
	// above. They are written back unchanged on encode.
	UnknownFields cometmodel.Object
}

var licenseUsageInfoSchema = cometmodel.NewSchema(
	"LicenseUsageInfo",
	func(r *LicenseUsageInfo) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("deviceCount", cometmodel.NumberElem[int64](), func(r *LicenseUsageInfo) *int64 { return &r.DeviceCount }),
	cometmodel.Optional("boosterCount", cometmodel.NumberElem[int64](), func(r *LicenseUsageInfo) **int64 { return &r.BoosterCount }),
	cometmodel.Scalar("ValidUntil", cometmodel.NumberElem[int64](), func(r *LicenseUsageInfo) *int64 { return &r.ValidUntil }),
	cometmodel.Map("Features", cometmodel.BoolElem(), func(r *LicenseUsageInfo) *map[string]bool { return &r.Features }, cometmodel.OmitIfUnset),
)

// NewLicenseUsageInfo returns a LicenseUsageInfo with every field at its default.
func NewLicenseUsageInfo() *LicenseUsageInfo { return licenseUsageInfoSchema.New() }

func (r *LicenseUsageInfo) DecodeValue(v cometmodel.Value) error { return licenseUsageInfoSchema.Decode(r, v) }
func (r *LicenseUsageInfo) EncodeValue() cometmodel.Value { return licenseUsageInfoSchema.Encode(r) }
func (r *LicenseUsageInfo) UnmarshalJSON(data []byte) error { return licenseUsageInfoSchema.DecodeJSON(r, data) }
func (r *LicenseUsageInfo) MarshalJSON() ([]byte, error) { return licenseUsageInfoSchema.EncodeJSON(r) }

// BrandingOptions controls how the server and its clients present
// themselves.
type BrandingOptions struct {
	BrandName             string
	ProductName           string
	CompanyName           string
	HelpURL               string
	DefaultLoginServerURL string
	TileBackgroundColor   string
	AccountRegisterURL    string
	// Raw image bytes, sent as base64.
	LogoImage    []byte
	HideNewsArea bool

	UnknownFields cometmodel.Object
}

var brandingOptionsSchema = cometmodel.NewSchema(
	"BrandingOptions",
	func(r *BrandingOptions) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("BrandName", cometmodel.StringElem(), func(r *BrandingOptions) *string { return &r.BrandName }),
	cometmodel.Scalar("ProductName", cometmodel.StringElem(), func(r *BrandingOptions) *string { return &r.ProductName }),
	cometmodel.Scalar("CompanyName", cometmodel.StringElem(), func(r *BrandingOptions) *string { return &r.CompanyName }),
	cometmodel.Scalar("HelpURL", cometmodel.StringElem(), func(r *BrandingOptions) *string { return &r.HelpURL }),
	cometmodel.Scalar("DefaultLoginServerURL", cometmodel.StringElem(), func(r *BrandingOptions) *string { return &r.DefaultLoginServerURL }),
	cometmodel.Scalar("TileBackgroundColor", cometmodel.StringElem(), func(r *BrandingOptions) *string { return &r.TileBackgroundColor }),
	cometmodel.Scalar("AccountRegisterURL", cometmodel.StringElem(), func(r *BrandingOptions) *string { return &r.AccountRegisterURL }),
	cometmodel.Bytes("LogoImage", func(r *BrandingOptions) *[]byte { return &r.LogoImage }, cometmodel.OmitIfUnset),
	cometmodel.Scalar("HideNewsArea", cometmodel.BoolElem(), func(r *BrandingOptions) *bool { return &r.HideNewsArea }),
)

// NewBrandingOptions returns a BrandingOptions with every field at its default.
func NewBrandingOptions() *BrandingOptions { return brandingOptionsSchema.New() }

func (r *BrandingOptions) DecodeValue(v cometmodel.Value) error { return brandingOptionsSchema.Decode(r, v) }
func (r *BrandingOptions) EncodeValue() cometmodel.Value { return brandingOptionsSchema.Encode(r) }
func (r *BrandingOptions) UnmarshalJSON(data []byte) error { return brandingOptionsSchema.DecodeJSON(r, data) }
func (r *BrandingOptions) MarshalJSON() ([]byte, error) { return brandingOptionsSchema.EncodeJSON(r) }

// EmailOptions configures outgoing email.
type EmailOptions struct {
	Mode                        string
	FromEmail                   string
	FromName                    string
	SMTPHost                    string
	SMTPPort                    int
	SMTPUsername                string
	SMTPPassword                string
	SMTPAllowInvalidCertificate bool
	SMTPCustomAuth              *string

	UnknownFields cometmodel.Object
}

var emailOptionsSchema = cometmodel.NewSchema(
	"EmailOptions",
	func(r *EmailOptions) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("Mode", cometmodel.StringElem(), func(r *EmailOptions) *string { return &r.Mode }),
	cometmodel.Scalar("FromEmail", cometmodel.StringElem(), func(r *EmailOptions) *string { return &r.FromEmail }),
	cometmodel.Scalar("FromName", cometmodel.StringElem(), func(r *EmailOptions) *string { return &r.FromName }),
	cometmodel.Scalar("SMTPHost", cometmodel.StringElem(), func(r *EmailOptions) *string { return &r.SMTPHost }),
	cometmodel.Scalar("SMTPPort", cometmodel.NumberElem[int](), func(r *EmailOptions) *int { return &r.SMTPPort }),
	cometmodel.Scalar("SMTPUsername", cometmodel.StringElem(), func(r *EmailOptions) *string { return &r.SMTPUsername }),
	cometmodel.Scalar("SMTPPassword", cometmodel.StringElem(), func(r *EmailOptions) *string { return &r.SMTPPassword }),
	cometmodel.Scalar("SMTPAllowInvalidCertificate", cometmodel.BoolElem(), func(r *EmailOptions) *bool { return &r.SMTPAllowInvalidCertificate }),
	cometmodel.Optional("SMTPCustomAuth", cometmodel.StringElem(), func(r *EmailOptions) **string { return &r.SMTPCustomAuth }),
)

// NewEmailOptions returns an EmailOptions with every field at its default.
func NewEmailOptions() *EmailOptions { return emailOptionsSchema.New() }

func (r *EmailOptions) DecodeValue(v cometmodel.Value) error { return emailOptionsSchema.Decode(r, v) }
func (r *EmailOptions) EncodeValue() cometmodel.Value { return emailOptionsSchema.Encode(r) }
func (r *EmailOptions) UnmarshalJSON(data []byte) error { return emailOptionsSchema.DecodeJSON(r, data) }
func (r *EmailOptions) MarshalJSON() ([]byte, error) { return emailOptionsSchema.EncodeJSON(r) }

// WebhookOption is one webhook target for server events.
type WebhookOption struct {
	URL           string
	Level         int
	CustomHeaders map[string]string
	StreamEvents  []int64

	UnknownFields cometmodel.Object
}

var webhookOptionSchema = cometmodel.NewSchema(
	"WebhookOption",
	func(r *WebhookOption) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("URL", cometmodel.StringElem(), func(r *WebhookOption) *string { return &r.URL }),
	cometmodel.Scalar("Level", cometmodel.NumberElem[int](), func(r *WebhookOption) *int { return &r.Level }),
	cometmodel.Map("CustomHeaders", cometmodel.StringElem(), func(r *WebhookOption) *map[string]string { return &r.CustomHeaders }, cometmodel.OmitIfUnset),
	cometmodel.Slice("StreamEvents", cometmodel.NumberElem[int64](), func(r *WebhookOption) *[]int64 { return &r.StreamEvents }, cometmodel.OmitIfUnset),
)

// NewWebhookOption returns a WebhookOption with every field at its default.
func NewWebhookOption() *WebhookOption { return webhookOptionSchema.New() }

func (r *WebhookOption) DecodeValue(v cometmodel.Value) error { return webhookOptionSchema.Decode(r, v) }
func (r *WebhookOption) EncodeValue() cometmodel.Value { return webhookOptionSchema.Encode(r) }
func (r *WebhookOption) UnmarshalJSON(data []byte) error { return webhookOptionSchema.DecodeJSON(r, data) }
func (r *WebhookOption) MarshalJSON() ([]byte, error) { return webhookOptionSchema.EncodeJSON(r) }

// AdminAuditEvent is one entry of the administrator audit log. Details is
// passed through as-is; its shape depends on Action.
type AdminAuditEvent struct {
	Timestamp  int64
	Username   string
	Action     string
	RemoteAddr string
	Details    *cometmodel.Value

	UnknownFields cometmodel.Object
}

var adminAuditEventSchema = cometmodel.NewSchema(
	"AdminAuditEvent",
	func(r *AdminAuditEvent) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("Timestamp", cometmodel.NumberElem[int64](), func(r *AdminAuditEvent) *int64 { return &r.Timestamp }),
	cometmodel.Scalar("Username", cometmodel.StringElem(), func(r *AdminAuditEvent) *string { return &r.Username }),
	cometmodel.Scalar("Action", cometmodel.StringElem(), func(r *AdminAuditEvent) *string { return &r.Action }),
	cometmodel.Scalar("RemoteAddr", cometmodel.StringElem(), func(r *AdminAuditEvent) *string { return &r.RemoteAddr }),
	cometmodel.Optional("Details", cometmodel.AnyElem(), func(r *AdminAuditEvent) **cometmodel.Value { return &r.Details }),
)

// NewAdminAuditEvent returns an AdminAuditEvent with every field at its default.
func NewAdminAuditEvent() *AdminAuditEvent { return adminAuditEventSchema.New() }

func (r *AdminAuditEvent) DecodeValue(v cometmodel.Value) error { return adminAuditEventSchema.Decode(r, v) }
func (r *AdminAuditEvent) EncodeValue() cometmodel.Value { return adminAuditEventSchema.Encode(r) }
func (r *AdminAuditEvent) UnmarshalJSON(data []byte) error { return adminAuditEventSchema.DecodeJSON(r, data) }
func (r *AdminAuditEvent) MarshalJSON() ([]byte, error) { return adminAuditEventSchema.EncodeJSON(r) }
