package ui

import (
	"fmt"

	"github.com/ytget/storefront/internal/locale"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage locale.Language
	texts           map[locale.Language]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyAddToCart       = "add_to_cart"
	KeyLoadMore        = "load_more"
	KeyLoading         = "loading"
	KeyNoMoreProducts  = "no_more_products"
	KeyLoadFailed      = "load_failed"
	KeyCart            = "cart"
	KeyCartCount       = "cart_count"
	KeyClose           = "close"
	KeyAddedToCart     = "added_to_cart"
	KeyApplyingLayout  = "applying_layout"
	KeyLanguageChanged = "language_changed"
	KeySettings        = "settings"
	KeyCatalogURL      = "catalog_url"
	KeyStorageBackend  = "storage_backend"
	KeyTuningFile      = "tuning_file"
	KeyRestartToApply  = "restart_to_apply"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyBrowse          = "browse"
	KeySettingsSaved   = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: locale.Default,
		texts:           make(map[locale.Language]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang locale.Language) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetCurrentLanguage returns the current language
func (l *Localization) GetCurrentLanguage() locale.Language {
	return l.currentLanguage
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[locale.English]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// Format returns the localized format string for key applied to args
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

func (l *Localization) initializeTexts() {
	l.texts[locale.English] = map[string]string{
		KeyAppTitle:        "Storefront",
		KeyAddToCart:       "Add to cart",
		KeyLoadMore:        "Load more",
		KeyLoading:         "Loading...",
		KeyNoMoreProducts:  "You have seen everything",
		KeyLoadFailed:      "Could not load products",
		KeyCart:            "Cart",
		KeyCartCount:       "%d items in cart",
		KeyClose:           "Close",
		KeyAddedToCart:     "Added to cart",
		KeyApplyingLayout:  "Applying layout...",
		KeyLanguageChanged: "Language changed",
		KeySettings:        "Settings",
		KeyCatalogURL:      "Catalog URL",
		KeyStorageBackend:  "Cart storage",
		KeyTuningFile:      "Tuning file",
		KeyRestartToApply:  "Changes apply on next launch",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyBrowse:          "Browse",
		KeySettingsSaved:   "Settings saved",
	}

	l.texts[locale.Arabic] = map[string]string{
		KeyAppTitle:        "المتجر",
		KeyAddToCart:       "أضف إلى السلة",
		KeyLoadMore:        "عرض المزيد",
		KeyLoading:         "جار التحميل...",
		KeyNoMoreProducts:  "لقد شاهدت كل المنتجات",
		KeyLoadFailed:      "تعذر تحميل المنتجات",
		KeyCart:            "السلة",
		KeyCartCount:       "%d منتجات في السلة",
		KeyClose:           "إغلاق",
		KeyAddedToCart:     "تمت الإضافة إلى السلة",
		KeyApplyingLayout:  "جار تطبيق الاتجاه...",
		KeyLanguageChanged: "تم تغيير اللغة",
		KeySettings:        "الإعدادات",
		KeyCatalogURL:      "رابط الكتالوج",
		KeyStorageBackend:  "تخزين السلة",
		KeyTuningFile:      "ملف الضبط",
		KeyRestartToApply:  "تطبق التغييرات عند التشغيل التالي",
		KeySave:            "حفظ",
		KeyCancel:          "إلغاء",
		KeyBrowse:          "استعراض",
		KeySettingsSaved:   "تم حفظ الإعدادات",
	}
}
