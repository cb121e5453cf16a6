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

// AdminAccountPropertiesResponse describes the administrator account making
// the request.
type AdminAccountPropertiesResponse struct {
	OrganizationID string
	Permissions    AdminUserPermissions
	Security       AdminSecurityOptions

	// UnknownFields holds members the server sent that aren't declared
	// above. They are written back unchanged on encode.
	UnknownFields cometmodel.Object
}

var adminAccountPropertiesResponseSchema = cometmodel.NewSchema(
	"AdminAccountPropertiesResponse",
	func(r *AdminAccountPropertiesResponse) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("OrganizationID", cometmodel.StringElem(), func(r *AdminAccountPropertiesResponse) *string { return &r.OrganizationID }),
	cometmodel.Scalar("Permissions", cometmodel.RecordElem(adminUserPermissionsSchema), func(r *AdminAccountPropertiesResponse) *AdminUserPermissions { return &r.Permissions }),
	cometmodel.Scalar("Security", cometmodel.RecordElem(adminSecurityOptionsSchema), func(r *AdminAccountPropertiesResponse) *AdminSecurityOptions { return &r.Security }),
)

// NewAdminAccountPropertiesResponse returns an AdminAccountPropertiesResponse with every field at its default.
func NewAdminAccountPropertiesResponse() *AdminAccountPropertiesResponse { return adminAccountPropertiesResponseSchema.New() }

func (r *AdminAccountPropertiesResponse) DecodeValue(v cometmodel.Value) error { return adminAccountPropertiesResponseSchema.Decode(r, v) }
func (r *AdminAccountPropertiesResponse) EncodeValue() cometmodel.Value { return adminAccountPropertiesResponseSchema.Encode(r) }
func (r *AdminAccountPropertiesResponse) UnmarshalJSON(data []byte) error { return adminAccountPropertiesResponseSchema.DecodeJSON(r, data) }
func (r *AdminAccountPropertiesResponse) MarshalJSON() ([]byte, error) { return adminAccountPropertiesResponseSchema.EncodeJSON(r) }

// AdminUserPermissions restricts what an administrator may change.
type AdminUserPermissions struct {
	PreventEditServerSettings    bool
	PreventServerShutdownUpgrade bool
	PreventChangePassword        bool
	AllowEditBranding            bool
	AllowEditEmailOptions        bool
	AllowEditRemoteStorage       bool
	AllowEditWebhooks            bool
	DenyConstellationRole        bool
	DenyStorageRole              bool
	// Only present on servers that support the setting.
	PreventDeleteSingleUser *bool

	UnknownFields cometmodel.Object
}

var adminUserPermissionsSchema = cometmodel.NewSchema(
	"AdminUserPermissions",
	func(r *AdminUserPermissions) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("PreventEditServerSettings", cometmodel.BoolElem(), func(r *AdminUserPermissions) *bool { return &r.PreventEditServerSettings }),
	cometmodel.Scalar("PreventServerShutdownUpgrade", cometmodel.BoolElem(), func(r *AdminUserPermissions) *bool { return &r.PreventServerShutdownUpgrade }),
	cometmodel.Scalar("PreventChangePassword", cometmodel.BoolElem(), func(r *AdminUserPermissions) *bool { return &r.PreventChangePassword }),
	cometmodel.Scalar("AllowEditBranding", cometmodel.BoolElem(), func(r *AdminUserPermissions) *bool { return &r.AllowEditBranding }),
	cometmodel.Scalar("AllowEditEmailOptions", cometmodel.BoolElem(), func(r *AdminUserPermissions) *bool { return &r.AllowEditEmailOptions }),
	cometmodel.Scalar("AllowEditRemoteStorage", cometmodel.BoolElem(), func(r *AdminUserPermissions) *bool { return &r.AllowEditRemoteStorage }),
	cometmodel.Scalar("AllowEditWebhooks", cometmodel.BoolElem(), func(r *AdminUserPermissions) *bool { return &r.AllowEditWebhooks }),
	cometmodel.Scalar("DenyConstellationRole", cometmodel.BoolElem(), func(r *AdminUserPermissions) *bool { return &r.DenyConstellationRole }),
	cometmodel.Scalar("DenyStorageRole", cometmodel.BoolElem(), func(r *AdminUserPermissions) *bool { return &r.DenyStorageRole }),
	cometmodel.Optional("PreventDeleteSingleUser", cometmodel.BoolElem(), func(r *AdminUserPermissions) **bool { return &r.PreventDeleteSingleUser }),
)

// NewAdminUserPermissions returns an AdminUserPermissions with every field at its default.
func NewAdminUserPermissions() *AdminUserPermissions { return adminUserPermissionsSchema.New() }

func (r *AdminUserPermissions) DecodeValue(v cometmodel.Value) error { return adminUserPermissionsSchema.Decode(r, v) }
func (r *AdminUserPermissions) EncodeValue() cometmodel.Value { return adminUserPermissionsSchema.Encode(r) }
func (r *AdminUserPermissions) UnmarshalJSON(data []byte) error { return adminUserPermissionsSchema.DecodeJSON(r, data) }
func (r *AdminUserPermissions) MarshalJSON() ([]byte, error) { return adminUserPermissionsSchema.EncodeJSON(r) }

// AdminSecurityOptions holds an administrator's login credentials and
// second-factor settings.
type AdminSecurityOptions struct {
	PasswordFormat                int
	Password                      string
	AllowPasswordLogin            bool
	AllowPasswordAndTOTPLogin     bool
	AllowPasswordAndWebAuthnLogin bool
	WebAuthnRegistrations         []AdminWebAuthnRegistration
	TOTPKeyEncryptionFormat       int
	TOTPKey                       string
	IPWhitelist                   string

	UnknownFields cometmodel.Object
}

var adminSecurityOptionsSchema = cometmodel.NewSchema(
	"AdminSecurityOptions",
	func(r *AdminSecurityOptions) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("PasswordFormat", cometmodel.NumberElem[int](), func(r *AdminSecurityOptions) *int { return &r.PasswordFormat }),
	cometmodel.Scalar("Password", cometmodel.StringElem(), func(r *AdminSecurityOptions) *string { return &r.Password }),
	cometmodel.Scalar("AllowPasswordLogin", cometmodel.BoolElem(), func(r *AdminSecurityOptions) *bool { return &r.AllowPasswordLogin }),
	cometmodel.Scalar("AllowPasswordAndTOTPLogin", cometmodel.BoolElem(), func(r *AdminSecurityOptions) *bool { return &r.AllowPasswordAndTOTPLogin }),
	cometmodel.Scalar("AllowPasswordAndWebAuthnLogin", cometmodel.BoolElem(), func(r *AdminSecurityOptions) *bool { return &r.AllowPasswordAndWebAuthnLogin }),
	cometmodel.Slice("WebAuthnRegistrations", cometmodel.RecordElem(adminWebAuthnRegistrationSchema), func(r *AdminSecurityOptions) *[]AdminWebAuthnRegistration { return &r.WebAuthnRegistrations }, cometmodel.OmitIfUnset),
	cometmodel.Scalar("TOTPKeyEncryptionFormat", cometmodel.NumberElem[int](), func(r *AdminSecurityOptions) *int { return &r.TOTPKeyEncryptionFormat }),
	cometmodel.Scalar("TOTPKey", cometmodel.StringElem(), func(r *AdminSecurityOptions) *string { return &r.TOTPKey }),
	cometmodel.Scalar("IPWhitelist", cometmodel.StringElem(), func(r *AdminSecurityOptions) *string { return &r.IPWhitelist }),
)

// NewAdminSecurityOptions returns an AdminSecurityOptions with every field at its default.
func NewAdminSecurityOptions() *AdminSecurityOptions { return adminSecurityOptionsSchema.New() }

func (r *AdminSecurityOptions) DecodeValue(v cometmodel.Value) error { return adminSecurityOptionsSchema.Decode(r, v) }
func (r *AdminSecurityOptions) EncodeValue() cometmodel.Value { return adminSecurityOptionsSchema.Encode(r) }
func (r *AdminSecurityOptions) UnmarshalJSON(data []byte) error { return adminSecurityOptionsSchema.DecodeJSON(r, data) }
func (r *AdminSecurityOptions) MarshalJSON() ([]byte, error) { return adminSecurityOptionsSchema.EncodeJSON(r) }

// AdminWebAuthnRegistration is one security key enrolled by an
// administrator.
type AdminWebAuthnRegistration struct {
	Description   string
	IsSoftwareKey bool
	RegisterTime  int64
	LastUseTime   *int64
	Credential    WebAuthnCredential

	UnknownFields cometmodel.Object
}

var adminWebAuthnRegistrationSchema = cometmodel.NewSchema(
	"AdminWebAuthnRegistration",
	func(r *AdminWebAuthnRegistration) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Scalar("Description", cometmodel.StringElem(), func(r *AdminWebAuthnRegistration) *string { return &r.Description }),
	cometmodel.Scalar("IsSoftwareKey", cometmodel.BoolElem(), func(r *AdminWebAuthnRegistration) *bool { return &r.IsSoftwareKey }),
	cometmodel.Scalar("RegisterTime", cometmodel.NumberElem[int64](), func(r *AdminWebAuthnRegistration) *int64 { return &r.RegisterTime }),
	cometmodel.Optional("LastUseTime", cometmodel.NumberElem[int64](), func(r *AdminWebAuthnRegistration) **int64 { return &r.LastUseTime }),
	cometmodel.Scalar("Credential", cometmodel.RecordElem(webAuthnCredentialSchema), func(r *AdminWebAuthnRegistration) *WebAuthnCredential { return &r.Credential }),
)

// NewAdminWebAuthnRegistration returns an AdminWebAuthnRegistration with every field at its default.
func NewAdminWebAuthnRegistration() *AdminWebAuthnRegistration { return adminWebAuthnRegistrationSchema.New() }

func (r *AdminWebAuthnRegistration) DecodeValue(v cometmodel.Value) error { return adminWebAuthnRegistrationSchema.Decode(r, v) }
func (r *AdminWebAuthnRegistration) EncodeValue() cometmodel.Value { return adminWebAuthnRegistrationSchema.Encode(r) }
func (r *AdminWebAuthnRegistration) UnmarshalJSON(data []byte) error { return adminWebAuthnRegistrationSchema.DecodeJSON(r, data) }
func (r *AdminWebAuthnRegistration) MarshalJSON() ([]byte, error) { return adminWebAuthnRegistrationSchema.EncodeJSON(r) }

// WebAuthnCredential is the public half of a WebAuthn credential. The
// identifiers travel as base64 text.
type WebAuthnCredential struct {
	ID              []byte
	PublicKey       []byte
	AttestationType string
	Transport       []string
	Authenticator   WebAuthnAuthenticator

	UnknownFields cometmodel.Object
}

var webAuthnCredentialSchema = cometmodel.NewSchema(
	"WebAuthnCredential",
	func(r *WebAuthnCredential) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Bytes("ID", func(r *WebAuthnCredential) *[]byte { return &r.ID }, cometmodel.Always),
	cometmodel.Bytes("PublicKey", func(r *WebAuthnCredential) *[]byte { return &r.PublicKey }, cometmodel.Always),
	cometmodel.Scalar("AttestationType", cometmodel.StringElem(), func(r *WebAuthnCredential) *string { return &r.AttestationType }),
	cometmodel.Slice("Transport", cometmodel.StringElem(), func(r *WebAuthnCredential) *[]string { return &r.Transport }, cometmodel.OmitIfUnset),
	cometmodel.Scalar("Authenticator", cometmodel.RecordElem(webAuthnAuthenticatorSchema), func(r *WebAuthnCredential) *WebAuthnAuthenticator { return &r.Authenticator }),
)

// NewWebAuthnCredential returns a WebAuthnCredential with every field at its default.
func NewWebAuthnCredential() *WebAuthnCredential { return webAuthnCredentialSchema.New() }

func (r *WebAuthnCredential) DecodeValue(v cometmodel.Value) error { return webAuthnCredentialSchema.Decode(r, v) }
func (r *WebAuthnCredential) EncodeValue() cometmodel.Value { return webAuthnCredentialSchema.Encode(r) }
func (r *WebAuthnCredential) UnmarshalJSON(data []byte) error { return webAuthnCredentialSchema.DecodeJSON(r, data) }
func (r *WebAuthnCredential) MarshalJSON() ([]byte, error) { return webAuthnCredentialSchema.EncodeJSON(r) }

// WebAuthnAuthenticator describes the device holding a credential.
type WebAuthnAuthenticator struct {
	AAGUID       []byte
	SignCount    uint32
	CloneWarning bool
	Attachment   *string

	UnknownFields cometmodel.Object
}

var webAuthnAuthenticatorSchema = cometmodel.NewSchema(
	"WebAuthnAuthenticator",
	func(r *WebAuthnAuthenticator) *cometmodel.Object { return &r.UnknownFields },
	cometmodel.Bytes("AAGUID", func(r *WebAuthnAuthenticator) *[]byte { return &r.AAGUID }, cometmodel.Always),
	cometmodel.Scalar("SignCount", cometmodel.NumberElem[uint32](), func(r *WebAuthnAuthenticator) *uint32 { return &r.SignCount }),
	cometmodel.Scalar("CloneWarning", cometmodel.BoolElem(), func(r *WebAuthnAuthenticator) *bool { return &r.CloneWarning }),
	cometmodel.Optional("Attachment", cometmodel.StringElem(), func(r *WebAuthnAuthenticator) **string { return &r.Attachment }),
)

// NewWebAuthnAuthenticator returns a WebAuthnAuthenticator with every field at its default.
func NewWebAuthnAuthenticator() *WebAuthnAuthenticator { return webAuthnAuthenticatorSchema.New() }

func (r *WebAuthnAuthenticator) DecodeValue(v cometmodel.Value) error { return webAuthnAuthenticatorSchema.Decode(r, v) }
func (r *WebAuthnAuthenticator) EncodeValue() cometmodel.Value { return webAuthnAuthenticatorSchema.Encode(r) }
func (r *WebAuthnAuthenticator) UnmarshalJSON(data []byte) error { return webAuthnAuthenticatorSchema.DecodeJSON(r, data) }
func (r *WebAuthnAuthenticator) MarshalJSON() ([]byte, error) { return webAuthnAuthenticatorSchema.EncodeJSON(r) }
