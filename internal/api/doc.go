// Package api provides the customer service REST API.
//
//	@title						Customer Service API
//	@version					1.0
//	@description				Customer records and the caller's session.
//	@BasePath					/api
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package api
