// services/link_service.go
package services

import "strings"

// BuildViewerLink oluşturulan kartın paylaşım adresini üretir: {origin}/card/{key}.
// Key başarılı bir CreateCard çağrısının çıktısıdır; burada varlık
// dışında doğrulanmaz.
func BuildViewerLink(baseOrigin, cardKey string) string {
	return strings.TrimSuffix(baseOrigin, "/") + "/card/" + cardKey
}
