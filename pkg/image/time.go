package image

import "time"

const timeLayout = "2006-01-02 15:04:05"

func nowUTC() string {
	return time.Now().UTC().Format(timeLayout)
}
