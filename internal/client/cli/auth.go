package cli

import (
	"context"
	"errors"
	"os"

	"github.com/CarlosParra69/Citas-sub001/internal/common"
)

// wipe zeroes a password buffer once it is no longer needed.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	defer wipe(password)

	sess, err := a.authService.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrUnavailable) {
			printlnFn("Server unavailable, try again later")
		} else {
			printlnFn("Login unsuccessful:", err.Error())
		}
		return err
	}

	a.startSession(ctx, sess)
	printlnFn("Logged in as", sess.User.Name, "("+string(sess.User.Role)+")")
	return nil
}

func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	defer wipe(password)

	if err := a.authService.Register(ctx, name, email, password); err != nil {
		printlnFn("Registration unsuccessful:", err.Error())
		return err
	}

	printlnFn("Registered. You can now log in.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	a.session = nil
	a.policy = nil
	printlnFn("Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	if a.session == nil {
		printlnFn("Not logged in")
		return nil
	}
	u := a.session.User
	printlnFn("Name: ", u.Name)
	printlnFn("Email:", u.Email)
	printlnFn("Role: ", string(u.Role))
	return nil
}
