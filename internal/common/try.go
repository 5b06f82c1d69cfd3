package common

import "time"

// Try calls f up to cnt times, sleeping waitMs between failed attempts, and
// returns the last error.
func Try(cnt int, waitMs int, f func() error) (err error) {
	for i := 0; i < cnt; i++ {
		if i > 0 {
			time.Sleep(time.Duration(waitMs) * time.Millisecond)
		}
		err = f()
		if err == nil {
			return nil
		}
	}
	return err
}
