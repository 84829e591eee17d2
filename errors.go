/*
 * errors.go, part of goensemble.
 *
 * Copyright 2023 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package ensemble

import "fmt"

//Error is the interface for errors that all packages in this library
//implement. The Decorate method allows adding and retrieving info from
//the error without changing its type or wrapping it in something else.
//The decoration slice should contain a list of the functions in the
//calling stack, plus, for each function, any relevant information, in
//the format "FunctionName: extra info".
type Error interface {
	error
	Decorate(string) []string
	Critical() bool
}

//CError is the concrete error type of the package.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string { return err.msg }

//Critical returns whether the error can be ignored.
func (err *CError) Critical() bool { return true }

//Decorate adds the dec string to the decoration slice of strings of
//the error and returns the resulting slice. If dec is empty, it just
//returns the current slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//ValidationError signals a fault in caller-supplied input: mismatched
//shapes or lengths, out-of-range or duplicate indexes. Operations that
//return it leave the ensemble unchanged.
type ValidationError struct {
	*CError
}

//StateError signals an operation attempted before its preconditions
//hold, e.g. requesting statistics from an ensemble with no coordinate
//data.
type StateError struct {
	*CError
}

func validationf(format string, a ...interface{}) *ValidationError {
	return &ValidationError{&CError{msg: fmt.Sprintf(format, a...)}}
}

func statef(format string, a ...interface{}) *StateError {
	return &StateError{&CError{msg: fmt.Sprintf(format, a...)}}
}

//errDecorate asserts that err implements Error and decorates it with
//the caller's name before returning it. Non-Error errors are returned
//unchanged.
func errDecorate(err error, caller string) error {
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return err
}

//LastFrameError is implemented by the harmless error returned when a
//frame read runs past the last frame, so it can be filtered in a type
//switch.
type LastFrameError interface {
	error
	NormalLastFrameTermination()
}

type lastFrameError string

func (err lastFrameError) Error() string                { return string(err) }
func (err lastFrameError) NormalLastFrameTermination() {}
