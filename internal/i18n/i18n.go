// ABOUTME: Two-locale (en/zh) translation support for titles and messages
// ABOUTME: Locale preference is persisted through the storage adapter; default is zh

package i18n

import (
	"log"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/harper/gamedex/internal/storage"
)

// DefaultLocale is used when no preference has been saved.
const DefaultLocale = "zh"

// Locales maps supported locale tags to their display names.
var Locales = map[string]string{
	"en": "English",
	"zh": "中文",
}

// Translator resolves message keys for the active locale.
type Translator struct {
	store  storage.Store
	locale string
}

// New loads the persisted locale preference, falling back to DefaultLocale
// when the preference is absent or unsupported.
func New(store storage.Store) *Translator {
	t := &Translator{store: store, locale: DefaultLocale}
	saved, err := store.GetValue(storage.KeyLanguage)
	if err != nil {
		log.Printf("warning: could not load language preference: %v", err)
		return t
	}
	if _, ok := Locales[saved]; ok {
		t.locale = saved
	}
	return t
}

// Locale returns the active locale tag.
func (t *Translator) Locale() string {
	return t.locale
}

// SetLocale switches the active locale and persists the preference.
// Unsupported tags are ignored.
func (t *Translator) SetLocale(locale string) {
	if _, ok := Locales[locale]; !ok {
		return
	}
	t.locale = locale
	if err := t.store.SetValue(storage.KeyLanguage, locale); err != nil {
		log.Printf("warning: could not persist language preference: %v", err)
	}
}

// Translate resolves key in the active locale, falling back to English and
// finally to the key itself. Occurrences of {param} are replaced from
// params.
func (t *Translator) Translate(key string, params map[string]string) string {
	text, ok := translations[t.locale][key]
	if !ok {
		text, ok = translations["en"][key]
	}
	if !ok {
		text = key
	}
	for name, value := range params {
		text = strings.ReplaceAll(text, "{"+name+"}", value)
	}
	return text
}

// CategoryTitle returns the localized display title for a category token.
// Unknown categories get a capitalized form of the token.
func (t *Translator) CategoryTitle(category string) string {
	key := strings.ToLower(category)
	if key == "io games" || key == "io" {
		key = "io_games"
	}
	if _, ok := translations["en"][key]; ok {
		return t.Translate(key, nil)
	}
	if category == "" {
		return t.Translate("all_games", nil)
	}
	r, size := utf8.DecodeRuneInString(category)
	return string(unicode.ToUpper(r)) + category[size:]
}

// translations is the full dictionary for both supported locales.
var translations = map[string]map[string]string{
	"en": {
		// Navigation
		"home":            "Home",
		"recently_played": "Recently Played",
		"favorites":       "Favorites",
		"new_games":       "New Games",
		"trending":        "Trending",
		"game_categories": "Game Categories",
		"action":          "Action",
		"adventure":       "Adventure",
		"arcade":          "Arcade",
		"puzzle":          "Puzzle",
		"racing":          "Racing",
		"sports":          "Sports",
		"shooting":        "Shooting",
		"strategy":        "Strategy",
		"casual":          "Casual",
		"card":            "Card",
		"simulation":      "Simulation",
		"io_games":        "IO Games",
		"all_categories":  "All Categories",

		// Section titles
		"featured_games":  "Featured Games",
		"popular_games":   "Popular Games",
		"new_games_title": "New Games",
		"all_games":       "All Games",
		"related_games":   "Related Games",
		"trending_games":  "Trending Games",

		// Game page
		"add_to_favorites":      "Add to Favorites",
		"remove_from_favorites": "Remove from Favorites",
		"how_to_play":           "How to Play",

		// Messages
		"no_games":       "No games available.",
		"loading":        "Loading...",
		"error_loading":  "Failed to load game data. Please try again later.",
		"search_results": `Search Results for "{query}"`,
	},
	"zh": {
		// 导航
		"home":            "首页",
		"recently_played": "最近游玩",
		"favorites":       "收藏夹",
		"new_games":       "新游戏",
		"trending":        "热门游戏",
		"game_categories": "游戏分类",
		"action":          "动作",
		"adventure":       "冒险",
		"arcade":          "街机",
		"puzzle":          "益智",
		"racing":          "赛车",
		"sports":          "体育",
		"shooting":        "射击",
		"strategy":        "策略",
		"casual":          "休闲",
		"card":            "卡牌",
		"simulation":      "模拟",
		"io_games":        "IO游戏",
		"all_categories":  "所有分类",

		// 标题
		"featured_games":  "精选游戏",
		"popular_games":   "热门游戏",
		"new_games_title": "新游戏",
		"all_games":       "所有游戏",
		"related_games":   "相关游戏",
		"trending_games":  "热门游戏",

		// 游戏页
		"add_to_favorites":      "加入收藏",
		"remove_from_favorites": "取消收藏",
		"how_to_play":           "游戏玩法",

		// 消息
		"no_games":       "暂无游戏。",
		"loading":        "加载中...",
		"error_loading":  "加载游戏数据失败，请稍后重试。",
		"search_results": `"{query}" 的搜索结果`,
	},
}
