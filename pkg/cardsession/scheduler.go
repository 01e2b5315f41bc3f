package cardsession

import "time"

// Scheduler geçiş zamanlayıcılarını soyutlar. Üretimde gerçek saat,
// testlerde elle ilerletilen bir kuyruk kullanılır; durum makinesi
// böylece gerçek zaman geçmeden test edilebilir.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// NewScheduler gerçek zamanla çalışan scheduler döndürür.
func NewScheduler() Scheduler { return realScheduler{} }
