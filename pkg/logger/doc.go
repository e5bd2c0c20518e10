// Package logger provides a small factory around log/slog with functional
// options, attribute helpers for validation runs and a handler that injects
// values stored in context.Context.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "recordcheck"),
//	    logger.WithContextValue("file", fileKey{}),
//	)
//	logger.SetAsDefault(log)
//
//	log.DebugContext(ctx, "check failed",
//	    logger.Field("email"),
//	    logger.Depth(1),
//	    logger.Error(err),
//	)
//
// # Configuration
//
//   - WithEnvironment – text/debug for development, json/info for staging and production.
//   - WithFormat / WithTextFormatter / WithJSONFormatter – override output format.
//   - WithLevel and ParseLevel – set the minimum level, parsing it from config strings.
//   - WithAttr – attach static attributes.
//   - WithContextExtractors / WithContextValue – inject attributes from context.
//
// Error and Errors return an empty attribute for nil errors, which slog
// drops, so they can be passed without a nil check.
package logger
