// file: internals/helpers/dbtime/dbtime.go
package dbtime

import (
	"os"
	"strings"
	"sync"
	"time"
)

// Timezone platform dipakai untuk batas window dashboard (hari ini, 7 hari, dst).
// 1) Prioritas: env PLATFORM_TZ (misal "Asia/Taipei")
// 2) Fallback: Asia/Taipei
// 3) Fallback terakhir: time.UTC

var (
	locOnce sync.Once
	loc     *time.Location
)

func PlatformLocation() *time.Location {
	locOnce.Do(func() {
		if tz := strings.TrimSpace(os.Getenv("PLATFORM_TZ")); tz != "" {
			if l, err := time.LoadLocation(tz); err == nil {
				loc = l
				return
			}
		}
		if l, err := time.LoadLocation("Asia/Taipei"); err == nil {
			loc = l
			return
		}
		loc = time.UTC
	})
	return loc
}

// NowInPlatform = time.Now() dalam timezone platform
func NowInPlatform() time.Time {
	return time.Now().In(PlatformLocation())
}

// StartOfDay memotong t ke 00:00:00 pada timezone-nya t
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
