package repositories

import "errors"

// ErrNotFound kayıt bulunamadığında repository katmanından döner.
// gorm.ErrRecordNotFound sızdırılmaz; servisler yalnızca bu hatayı tanır.
var ErrNotFound = errors.New("kayıt bulunamadı")
