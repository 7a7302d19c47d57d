package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const mib = 1024 * 1024

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		d    Descriptor
		want Reason
	}{
		{"square small short light", Descriptor{Width: 640, Height: 640, Duration: 30, Size: 2 * mib}, Accepted},
		{"tiny", Descriptor{Width: 1, Height: 1, Duration: 0, Size: 0}, Accepted},
		{"landscape oversized", Descriptor{Width: 800, Height: 600, Duration: 10, Size: 1 * mib}, ResolutionTooHigh},
		{"tall oversized", Descriptor{Width: 480, Height: 720, Duration: 10, Size: 1 * mib}, ResolutionTooHigh},
		{"oversized square", Descriptor{Width: 1080, Height: 1080, Duration: 10, Size: 1 * mib}, ResolutionTooHigh},
		{"oversized beats every other rule", Descriptor{Width: 1920, Height: 1080, Duration: 600, Size: 100 * mib}, ResolutionTooHigh},
		{"not square", Descriptor{Width: 640, Height: 480, Duration: 10, Size: 1 * mib}, NotSquare},
		{"not square beats too long", Descriptor{Width: 480, Height: 360, Duration: 90, Size: 20 * mib}, NotSquare},
		{"too long", Descriptor{Width: 480, Height: 480, Duration: 90, Size: 1 * mib}, TooLong},
		{"too long beats too heavy", Descriptor{Width: 480, Height: 480, Duration: 61, Size: 20 * mib}, TooLong},
		{"exactly 60 seconds", Descriptor{Width: 480, Height: 480, Duration: 60, Size: 1 * mib}, Accepted},
		{"exactly 8 MiB", Descriptor{Width: 480, Height: 480, Duration: 10, Size: 8 * mib}, Accepted},
		{"8 MiB plus one byte truncates", Descriptor{Width: 480, Height: 480, Duration: 10, Size: 8*mib + 1}, Accepted},
		{"just under 9 MiB", Descriptor{Width: 480, Height: 480, Duration: 10, Size: 9*mib - 1}, Accepted},
		{"exactly 9 MiB", Descriptor{Width: 480, Height: 480, Duration: 10, Size: 9 * mib}, TooHeavy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.d)
			assert.Equal(t, tt.want, got.Reason, "got %s", got.Reason)
			assert.Equal(t, tt.want == Accepted, got.Accepted())
		})
	}
}

func TestValidate_OversizedAlwaysReportsResolution(t *testing.T) {
	for _, w := range []int{100, 640, 641, 2000} {
		for _, h := range []int{100, 640, 641, 2000} {
			if w <= MaxSide && h <= MaxSide {
				continue
			}
			for _, dur := range []int{0, 60, 61} {
				for _, size := range []int64{0, 9 * mib} {
					d := Descriptor{Width: w, Height: h, Duration: dur, Size: size}
					assert.Equal(t, ResolutionTooHigh, Validate(d).Reason, "%+v", d)
				}
			}
		}
	}
}

func TestValidate_Idempotent(t *testing.T) {
	d := Descriptor{Width: 480, Height: 480, Duration: 90, Size: mib}
	assert.Equal(t, Validate(d), Validate(d))
}

func TestReasonMessage(t *testing.T) {
	assert.Equal(t, "видео не должно быть больше 360p:(", ResolutionTooHigh.Message())
	assert.Equal(t, "видео должно быть квадратным:(", NotSquare.Message())
	assert.Equal(t, "видео должно быть короче 60 секунд:(", TooLong.Message())
	assert.Equal(t, "видео не должно быть тяжелее 8 мегабайт:(", TooHeavy.Message())
	assert.Empty(t, Accepted.Message())
}
