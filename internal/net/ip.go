package net

import (
	"fmt"
	"net"
)

// OutgoingIP finds the local address other machines on the LAN can reach
// this board at. It falls back to loopback.
func OutgoingIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		// No route to the internet; look at the interfaces instead.
		return localIPFallback()
	}
	defer conn.Close()

	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}

func localIPFallback() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "127.0.0.1"
	}
	for _, address := range addrs {
		if ipnet, ok := address.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ipnet.IP.To4() != nil {
				return ipnet.IP.String()
			}
		}
	}
	return "127.0.0.1"
}

// ViewerURL is the websocket address of a mirror on this machine.
func ViewerURL(port int) string {
	return "ws://" + net.JoinHostPort(OutgoingIP(), fmt.Sprint(port)) + "/ws"
}
