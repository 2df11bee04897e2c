// Package sample provides the built-in messages shown by the default screen,
// the previews and the -conversation mode.
package sample

import "github.com/fwojciec/convo"

// Greeting is the message the default screen displays.
var Greeting = convo.Message{Author: "Android", Body: "Jetpack Compose"}

// Preview is the message rendered by the light/dark card preview.
var Preview = convo.Message{Author: "Colleague", Body: "Hey, take a look at Jetpack Compose"}

// Conversation returns a fresh copy of the sample transcript, so callers may
// reorder or trim it without affecting each other.
func Conversation() convo.Transcript {
	msgs := []convo.Message{
		{Author: "Colleague", Body: "Test...Test...Test..."},
		{
			Author: "Colleague",
			Body: "List of Android versions:\n" +
				"Android KitKat (API 19)\n" +
				"Android Lollipop (API 21)\n" +
				"Android Marshmallow (API 23)\n" +
				"Android Nougat (API 24)\n" +
				"Android Oreo (API 26)\n" +
				"Android Pie (API 28)\n" +
				"Android 10 (API 29)\n" +
				"Android 11 (API 30)\n" +
				"Android 12 (API 31)",
		},
		{
			Author: "Colleague",
			Body: "I think Kotlin is my favorite programming language.\n" +
				"It's so much fun!",
		},
		{Author: "Colleague", Body: "Searching for alternatives to XML layouts..."},
		{
			Author: "Colleague",
			Body: "Hey, take a look at Jetpack Compose, it's pretty good!\n" +
				"It's a declarative toolkit for building native UI. " +
				"Describe what the screen should look like for a given state " +
				"and the toolkit takes care of updating it when the state changes.",
		},
		{Author: "Colleague", Body: "It's available from API 21+ :)"},
		{Author: "Colleague", Body: "Writing Kotlin for UI seems so natural, Compose where have you been all my life?"},
		{Author: "Colleague", Body: "Android Studio next version's name is Arctic Fox"},
		{
			Author: "Colleague",
			Body: "Android Studio Arctic Fox tooling for Compose is top notch ^_^\n" +
				"Previews render light and dark variants side by side.",
		},
		{Author: "Colleague", Body: "I didn't know you can now run the emulator directly from Android Studio"},
		{Author: "Colleague", Body: "Compose Previews are great to check quickly how a composable layout looks like"},
		{Author: "Colleague", Body: "Previews are also interactive after enabling the experimental setting"},
		{Author: "Colleague", Body: "Have you tried writing build.gradle with KTS?"},
	}
	return convo.Transcript{Title: "Sample conversation", Messages: msgs}
}
