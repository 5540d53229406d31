// Package notification holds the in-app notification feed and the push device
// registry of the fastfoodie backend.
//
// A Notification is addressed to exactly one Recipient: a restaurant owner,
// a customer or a delivery partner. Recipients are explicit (role, id) pairs so
// that storage can keep one foreign key per role instead of a polymorphic
// "user" reference.
//
// DeviceToken records a push registration for a recipient. Tokens are never
// deleted by the push path; the provider reporting them as unregistered only
// deactivates them, and registering the same token again reactivates it.
package notification
