package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/finacc/internal/utils"
	"github.com/gin-gonic/gin"
)

// untrackedRoutes are never sent to PostHog.
var untrackedRoutes = map[string]bool{
	"/health":       true,
	"/swagger/*any": true,
}

const (
	apiPrefix         = "/api/v1/"
	organizationParam = "organization_id"
)

// RouteEventName turns a gin route template into an analytics event name.
// Path parameters are dropped, so "/api/v1/organizations/:organization_id/invoices/:invoice_id/pay"
// with method POST becomes "post_organizations_invoices_pay".
func RouteEventName(method, fullPath string) string {
	if fullPath == "" {
		return ""
	}
	parts := []string{strings.ToLower(method)}
	for _, segment := range strings.Split(strings.TrimPrefix(fullPath, apiPrefix), "/") {
		if segment == "" || strings.HasPrefix(segment, ":") || strings.HasPrefix(segment, "*") {
			continue
		}
		parts = append(parts, strings.ReplaceAll(segment, "-", "_"))
	}
	return strings.Join(parts, "_")
}

// eventProperties collects the request facts shared by automatic and custom events.
// The organization becomes a PostHog group so events can be analysed per tenant.
func eventProperties(c *gin.Context) map[string]any {
	props := map[string]any{
		"method": c.Request.Method,
		"route":  c.FullPath(),
	}
	if orgID := c.Param(organizationParam); orgID != "" {
		props["organization_id"] = orgID
		props["$groups"] = map[string]string{"organization": orgID}
	}
	return props
}

// PosthogMiddleware records one event per successful API request.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() || untrackedRoutes[c.FullPath()] {
			c.Next()
			return
		}

		c.Next()

		// Failed requests are visible in the logs already
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}
		eventName := RouteEventName(c.Request.Method, c.FullPath())
		if eventName == "" {
			return
		}

		props := eventProperties(c)
		props["status_code"] = c.Writer.Status()
		posthogClient.Enqueue(userID, eventName, props)
	}
}

// PosthogEvent sends a named business event (for example "invoice_paid") on behalf of the current user.
func PosthogEvent(c *gin.Context, posthogClient *utils.PosthogClientWrapper, eventName string, properties map[string]any) {
	if !posthogClient.IsInitialized() {
		return
	}
	userID, exists := GetUserIDFromContext(c)
	if !exists {
		return
	}

	props := eventProperties(c)
	for k, v := range properties {
		props[k] = v
	}
	posthogClient.Enqueue(userID, eventName, props)
}
