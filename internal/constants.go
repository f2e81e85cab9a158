/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

const (
	UserAgent          = "swisstd/0.3.0 (+https://github.com/mikeb26/swisstd)"
	BccUSCFAffiliateID = "A5000408"
	WebCacheBucket     = "bopmatic-swisstd-prod-webcache"

	// DiscordMaxContent is the longest message body Discord accepts
	DiscordMaxContent = 2000
)
