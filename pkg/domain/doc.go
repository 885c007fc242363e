// Package domain contains the core entities shared by the session store, the
// onboarding flow and the tender catalog: users and their directory accounts,
// business profiles collected during onboarding, and government tenders.
// These types carry no infrastructure concerns so every layer can use them.
package domain
