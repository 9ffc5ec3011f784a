package httpapi_test

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/gridview/internal/adapters/httpapi"
)

func TestLifecycle_AutoShutdown(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		lc := httpapi.NewLifecycle(100 * time.Millisecond)

		select {
		case <-lc.ShutdownChan():
		case <-time.After(200 * time.Millisecond):
			t.Fatal("expected shutdown to be triggered")
		}
		synctest.Wait()
	})
}

func TestLifecycle_ResetPreventsShutdown(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		lc := httpapi.NewLifecycle(100 * time.Millisecond)

		time.Sleep(50 * time.Millisecond)
		lc.ResetTimer()

		select {
		case <-lc.ShutdownChan():
			t.Fatal("shutdown should not have triggered yet")
		case <-time.After(60 * time.Millisecond):
		}
		assert.Equal(t, 40*time.Millisecond, lc.IdleRemaining())
		lc.Shutdown()
		synctest.Wait()
	})
}

func TestLifecycle_ZeroTimeoutNeverExpires(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		lc := httpapi.NewLifecycle(0)
		lc.ResetTimer()

		select {
		case <-lc.ShutdownChan():
			t.Fatal("a zero timeout must not expire")
		case <-time.After(24 * time.Hour):
		}
		assert.Zero(t, lc.IdleRemaining())
		assert.Equal(t, 24*time.Hour, lc.Uptime())
	})
}

func TestLifecycle_ShutdownIsIdempotent(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		lc := httpapi.NewLifecycle(time.Hour)
		lc.Shutdown()
		lc.Shutdown()

		select {
		case <-lc.ShutdownChan():
		default:
			t.Fatal("expected shutdown channel to be closed")
		}
	})
}

func TestLifecycle_LastActivity(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		lc := httpapi.NewLifecycle(time.Hour)
		initial := lc.LastActivity()

		time.Sleep(10 * time.Millisecond)
		lc.ResetTimer()

		assert.Equal(t, 10*time.Millisecond, lc.LastActivity().Sub(initial))
		lc.Shutdown()
	})
}
