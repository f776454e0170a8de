// Package crawler classifies requests by User-Agent against a fixed
// allow-list of known link-preview and search bots. This is cooperative
// classification, not bot-detection security: well-known bots identify
// themselves honestly, and anything unknown is treated as a browser.
package crawler

import "strings"

// signatures are matched case-insensitively as substrings, anywhere in
// the User-Agent string.
var signatures = []string{
	"facebookexternalhit",
	"facebot",
	"twitterbot",
	"linkedinbot",
	"whatsapp",
	"slackbot",
	"telegrambot",
	"discordbot",
	"pinterest",
	"redditbot",
	"skypeuripreview",
	"vkshare",
	"googlebot",
	"bingbot",
	"yandex",
	"duckduckbot",
	"baiduspider",
	"applebot",
	"embedly",
	"quora link preview",
	"w3c_validator",
}

// IsCrawler reports whether the User-Agent belongs to a known preview or
// search crawler. An empty User-Agent is never a crawler, so unidentified
// clients get redirected instead of served rendered content.
func IsCrawler(userAgent string) bool {
	if userAgent == "" {
		return false
	}

	ua := strings.ToLower(userAgent)
	for _, sig := range signatures {
		if strings.Contains(ua, sig) {
			return true
		}
	}

	return false
}
