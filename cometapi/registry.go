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

// Package cometapi declares the records exchanged with a Comet backup
// server's JSON API. Each type pairs a Go struct with a cometmodel.Schema, so
// decoding, encoding, and forward-compatible round-tripping come from the
// shared codec rather than per-type code.
//
// Build new requests from the New constructors, which apply defaults, and
// decode responses with UnmarshalJSON or DecodeValue on a fresh record:
//
//	resp := cometapi.NewAddBucketResponseMessage()
//	if err := json.Unmarshal(body, resp); err != nil {
//		return err
//	}
//
// Members the server sends that a record doesn't declare are kept in its
// UnknownFields and written back by MarshalJSON.
package cometapi

import (
	"github.com/cometmodel/cometmodel-go"
)

var registry = newRegistry()

// Registry returns a registry of every record type in this package, keyed by
// type name. It's shared and must not be modified.
func Registry() *cometmodel.Registry {
	return registry
}

func newRegistry() *cometmodel.Registry {
	reg := cometmodel.NewRegistry()
	errs := []error{
		cometmodel.RegisterSchema(reg, adminAccountPropertiesResponseSchema),
		cometmodel.RegisterSchema(reg, adminUserPermissionsSchema),
		cometmodel.RegisterSchema(reg, adminSecurityOptionsSchema),
		cometmodel.RegisterSchema(reg, adminWebAuthnRegistrationSchema),
		cometmodel.RegisterSchema(reg, webAuthnCredentialSchema),
		cometmodel.RegisterSchema(reg, webAuthnAuthenticatorSchema),
		cometmodel.RegisterSchema(reg, bucketPropertiesSchema),
		cometmodel.RegisterSchema(reg, bucketUsageInfoSchema),
		cometmodel.RegisterSchema(reg, sizeMeasurementSchema),
		cometmodel.RegisterSchema(reg, destinationLocationSchema),
		cometmodel.RegisterSchema(reg, destinationConfigSchema),
		cometmodel.RegisterSchema(reg, destinationStatisticsSchema),
		cometmodel.RegisterSchema(reg, contentMeasurementSchema),
		cometmodel.RegisterSchema(reg, contentMeasurementComponentSchema),
		cometmodel.RegisterSchema(reg, retentionPolicySchema),
		cometmodel.RegisterSchema(reg, retentionRangeSchema),
		cometmodel.RegisterSchema(reg, storageFreeSpaceInfoSchema),
		cometmodel.RegisterSchema(reg, deviceConfigSchema),
		cometmodel.RegisterSchema(reg, osInfoSchema),
		cometmodel.RegisterSchema(reg, sourceBasicInfoSchema),
		cometmodel.RegisterSchema(reg, sourceConfigSchema),
		cometmodel.RegisterSchema(reg, sourceStatisticsSchema),
		cometmodel.RegisterSchema(reg, extraFileExclusionSchema),
		cometmodel.RegisterSchema(reg, backupJobDetailSchema),
		cometmodel.RegisterSchema(reg, backupJobProgressSchema),
		cometmodel.RegisterSchema(reg, cometAPIResponseMessageSchema),
		cometmodel.RegisterSchema(reg, addBucketResponseMessageSchema),
		cometmodel.RegisterSchema(reg, licenseUsageInfoSchema),
		cometmodel.RegisterSchema(reg, brandingOptionsSchema),
		cometmodel.RegisterSchema(reg, emailOptionsSchema),
		cometmodel.RegisterSchema(reg, webhookOptionSchema),
		cometmodel.RegisterSchema(reg, adminAuditEventSchema),
		cometmodel.RegisterSchema(reg, vmDiskSelectionSchema),
		cometmodel.RegisterSchema(reg, vmDiskInfoSchema),
		cometmodel.RegisterSchema(reg, vmwareMachineInfoSchema),
		cometmodel.RegisterSchema(reg, browseVMwareResponseSchema),
	}
	for _, err := range errs {
		if err != nil {
			panic(err)
		}
	}
	return reg
}
