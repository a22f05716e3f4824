// Package migrations embeds the SQL migrations of the content database.
package migrations
