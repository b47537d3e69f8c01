// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

// maxFieldLen bounds every text field on the wire. Tighter per-field caps are
// checked during execution so that an overlong field fails with
// [ErrFieldTooLong] instead of a decoding error.
const maxFieldLen = 1024
