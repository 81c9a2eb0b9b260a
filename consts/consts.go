// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	ByteLen   = 1
	Uint64Len = 8
	MaxUint32 = ^uint32(0)
	MaxUint64 = ^uint64(0)
)
