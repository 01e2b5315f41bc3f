package services

import (
	"os"
	"testing"

	"tebrik.link/configs/configslog"
)

func TestMain(m *testing.M) {
	configslog.InitLogger()
	os.Exit(m.Run())
}
