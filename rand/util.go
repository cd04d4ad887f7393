// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import "math"

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
