package rules

import "fmt"

// quotaWarnCalls is 80% of the default daily Amazon call budget.
const quotaWarnCalls = 16000

// AlertRules covers server health, token acquisition, Amazon quota and
// warm-up delivery.
func AlertRules() PrometheusRule {
	return resource("sc-alerts", RuleGroup{
		Name: "sc-alerts",
		Rules: []Rule{
			alert("ScDown", `absent(up{job="seller-console"})`, "2m", critical,
				"Seller Console is down",
				"The seller-console job has been absent for more than 2 minutes."),
			alert("ScReadinessDown", `sc_readyz_up == 0`, "2m", critical,
				"Seller Console readiness check is failing",
				"The database has been unreachable for more than 2 minutes."),
			alert("ScHighErrorRate", `sc:http_errors:rate5m / sc:http_requests:rate5m > 0.05`, "5m", warning,
				"High JSON API error rate on Seller Console",
				"More than 5% of API requests are returning 5xx over the last 5 minutes."),
			alert("ScTokenRefreshFailing",
				`sum(increase(sc_token_refreshes_total{result="error"}[15m])) by (scope, marketplace) > 0`,
				"15m", critical,
				"Amazon token refresh is failing",
				"Refresh-token exchanges keep failing; the refresh token may have been revoked."),
			alert("ScWarmupFailing", `increase(sc_warmup_runs_total{result="error"}[2h]) >= 2`, "0m", warning,
				"Token warm-up runs are failing",
				"At least two token warm-up runs failed in the last two hours."),
			alert("ScAmazonThrottled",
				`sum(rate(sc_amazon_api_calls_total{status="429"}[5m])) by (marketplace) > 0.1`,
				"10m", warning,
				"Amazon is throttling API calls",
				"More than 0.1 calls/s have been answered with 429 for 10 minutes."),
			alert("ScAmazonQuotaHigh", fmt.Sprintf("sc_amazon_daily_usage > %d", quotaWarnCalls), "5m", warning,
				"Amazon API daily usage is above 80% of the quota",
				fmt.Sprintf("A marketplace has used more than %d calls in the last 24 hours.", quotaWarnCalls)),
			alert("ScAmazonLimitReached", `increase(sc_amazon_daily_limit_hits_total[5m]) > 0`, "0m", critical,
				"Amazon API daily limit has been reached",
				"Calls to a marketplace are refused until the rolling 24-hour window frees budget."),
			alert("ScNotificationFailures", `increase(sc_notifications_sent_total{result="error"}[5m]) > 0`, "1m", warning,
				"Warm-up alert delivery is failing",
				"One or more warm-up alerts could not be sent to Discord or SNS."),
		},
	})
}
