package parallel

import (
	"fmt"
	"sync/atomic"
	"testing"

	"pixproc/pixel"
)

var _ pixel.Ranger = &Pool{}

func TestRangeCoversEveryIndexOnce(t *testing.T) {
	for _, workers := range []int{1, 2, 4, 16} {
		for _, n := range []int{0, 1, 7, 100, 1023} {
			t.Run(fmt.Sprintf("workers=%d,n=%d", workers, n), func(t *testing.T) {
				pool := Start(workers)
				defer pool.Wait(true)

				hits := make([]atomic.Int32, n)
				pool.Range(n, func(lo, hi int) {
					if lo >= hi {
						t.Errorf("empty batch [%d, %d)", lo, hi)
					}
					for i := lo; i < hi; i++ {
						hits[i].Add(1)
					}
				})

				for i := range hits {
					if got := hits[i].Load(); got != 1 {
						t.Fatalf("index %d visited %d times, want 1", i, got)
					}
				}
			})
		}
	}
}

func TestDoAndWait(t *testing.T) {
	pool := Start(3)
	if pool.Workers() != 3 {
		t.Fatalf("Workers() = %d, want 3", pool.Workers())
	}

	var count atomic.Int64
	for range 50 {
		pool.Do(func() { count.Add(1) })
	}
	pool.Wait(true)

	if got := count.Load(); got != 50 {
		t.Errorf("ran %d tasks, want 50", got)
	}
}

func TestStartDefaultsToGOMAXPROCS(t *testing.T) {
	pool := Start(0)
	defer pool.Wait(true)

	if pool.Workers() < 1 {
		t.Errorf("Workers() = %d, want at least 1", pool.Workers())
	}
}

func TestPoolDrivesPixelOps(t *testing.T) {
	pool := Start(4)
	defer pool.Wait(true)

	im := pixel.MakeImage(31, 17, 3)
	for i := range im.Data {
		im.Data[i] = float32(i%29) / 28
	}
	want := im.Copy()
	want.RGBToHSV()

	im.RGBToHSVOn(pool)
	for i := range want.Data {
		if im.Data[i] != want.Data[i] {
			t.Fatalf("Data[%d] = %v, want %v", i, im.Data[i], want.Data[i])
		}
	}
}
